// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"strings"
)

// normalize lowers the statement text, strips comments and string literals
// and collapses whitespace so rules cannot be bypassed with comment
// splicing, whitespace tricks or alternate casing.
//
// Comments are whitespace to a SQL lexer, so the primary variant replaces
// them with a space. With splice set, comments are removed without leaving
// a boundary; the gate scans both variants so neither "user_bob/**/x" nor
// "user_/**/bob" can hide a namespace reference.
//
// Quoted identifiers are kept, a cross-tenant reference hidden in
// "user_bob" must still be seen by the rules. Single-quoted literals are
// dropped entirely, a literal mentioning another namespace is data, not a
// reference.
func normalize(sql string, splice bool) string {
	var b strings.Builder
	b.Grow(len(sql))

	s := strings.ToLower(sql)

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "--"):
			// line comment, swallow to end of line
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if !splice {
				b.WriteByte(' ')
			}
		case strings.HasPrefix(s[i:], "/*"):
			// block comment, no nesting per the SQL standard
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)
			} else {
				i += 2 + end + 2
			}
			if !splice {
				b.WriteByte(' ')
			}
		case s[i] == '\'':
			// string literal, '' is an escaped quote
			i++
			for i < len(s) {
				if s[i] == '\'' {
					if i+1 < len(s) && s[i+1] == '\'' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
			b.WriteByte(' ')
		case s[i] == '"':
			// quoted identifier, keep the contents visible to the rules
			b.WriteByte(' ')
			i++
			for i < len(s) && s[i] != '"' {
				b.WriteByte(s[i])
				i++
			}
			if i < len(s) {
				i++
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
			i++
		}
	}

	// collapse every whitespace run to a single space
	return strings.Join(strings.Fields(b.String()), " ")
}
