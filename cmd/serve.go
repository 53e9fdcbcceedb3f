// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/sqllab-service/internal/config"
	"github.com/canonical/sqllab-service/internal/db"
	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring/prometheus"
	"github.com/canonical/sqllab-service/internal/namespace"
	"github.com/canonical/sqllab-service/internal/storage"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/pkg/authentication"
	"github.com/canonical/sqllab-service/pkg/console"
	"github.com/canonical/sqllab-service/pkg/executor"
	"github.com/canonical/sqllab-service/pkg/gate"
	"github.com/canonical/sqllab-service/pkg/identity"
	"github.com/canonical/sqllab-service/pkg/lifecycle"
	"github.com/canonical/sqllab-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("sqllab_service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	allocator := namespace.NewAllocator(dbClient, tracer, monitor, logger)

	identityService := identity.NewService(s, tracer, monitor, logger)
	lifecycleService := lifecycle.NewService(identityService, allocator, tracer, monitor, logger)

	permissionGate := gate.NewGate(tracer, monitor, logger)
	queryExecutor := executor.NewExecutor(dbClient, specs.QueryTimeout, tracer, monitor, logger)
	consoleService := console.NewService(permissionGate, queryExecutor, tracer, monitor, logger)

	authMiddleware := authentication.NewMiddleware(identityService, specs.AdminToken, tracer, monitor, logger)

	identityAPI := identity.NewAPI(lifecycleService, identityService, tracer, monitor, logger)
	consoleAPI := console.NewAPI(consoleService, tracer, monitor, logger)
	lifecycleAPI := lifecycle.NewAPI(lifecycleService, identityService, tracer, monitor, logger)

	router := web.NewRouter(
		identityAPI,
		consoleAPI,
		lifecycleAPI,
		authMiddleware,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
