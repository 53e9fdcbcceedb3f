// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package executor

import (
	"strings"
)

// splitStatements cuts a SQL script on top-level semicolons so each piece
// can run through the extended query protocol. Semicolons inside string
// literals, quoted identifiers and comments do not split. Empty pieces are
// dropped.
func splitStatements(sql string) []string {
	var out []string
	var start int

	for i := 0; i < len(sql); {
		switch {
		case sql[i] == ';':
			if stmt := strings.TrimSpace(sql[start:i]); stmt != "" {
				out = append(out, stmt)
			}
			i++
			start = i
		case strings.HasPrefix(sql[i:], "--"):
			for i < len(sql) && sql[i] != '\n' {
				i++
			}
		case strings.HasPrefix(sql[i:], "/*"):
			end := strings.Index(sql[i+2:], "*/")
			if end < 0 {
				i = len(sql)
			} else {
				i += 2 + end + 2
			}
		case sql[i] == '\'' || sql[i] == '"':
			quote := sql[i]
			i++
			for i < len(sql) {
				if sql[i] == quote {
					if quote == '\'' && i+1 < len(sql) && sql[i+1] == quote {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
		default:
			i++
		}
	}

	if stmt := strings.TrimSpace(sql[start:]); stmt != "" {
		out = append(out, stmt)
	}

	return out
}
