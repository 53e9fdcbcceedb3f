// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

// Verdict is the outcome of a gate check. Denials carry the name of the
// rule that fired and a caller-facing reason.
type Verdict struct {
	Allowed bool
	Rule    string
	Reason  string
}

func Allow() Verdict {
	return Verdict{Allowed: true}
}

func Deny(rule, reason string) Verdict {
	return Verdict{Allowed: false, Rule: rule, Reason: reason}
}
