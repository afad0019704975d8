// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import "strings"

// legacyCleanup is applied to values outside the literal grammar.
var legacyCleanup = strings.NewReplacer("(", "", ")", "", "~", "!")

// cleanLiteral rewrites a C numeric constant into the generated form.
//
// The accepted grammar is
//
//	literal = "(" literal ")" | ["~"] ["-"] number suffix
//	number  = "0x" hexdigits | digits ["." digits] [exponent]
//	suffix  = any of u U l L (and f F after a decimal number)
//
// with "~" emitted as "!" and the parens and suffix dropped:
// "(~0ULL)" -> "!0", "0x7FU" -> "0x7F", "1.0f" -> "1.0".
// Values outside the grammar only lose their parens and have "~" translated.
func cleanLiteral(v string) string {
	s := unwrapParens(strings.TrimSpace(v))

	var sign string
	if rest, ok := strings.CutPrefix(s, "~"); ok {
		sign, s = "!", rest
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, s = sign+"-", rest
	}

	if num, ok := numericLiteral(s); ok {
		return sign + num
	}
	return legacyCleanup.Replace(v)
}

// numericLiteral returns s without its integer or float suffix.
func numericLiteral(s string) (string, bool) {
	if rest, ok := cutHexPrefix(s); ok {
		n := hexDigits(rest)
		if n == 0 || !onlyRunes(rest[n:], "uUlL") {
			return "", false
		}
		return s[:2+n], true
	}

	i := digits(s, 0)
	intDigits := i
	if i < len(s) && s[i] == '.' {
		j := digits(s, i+1)
		if intDigits == 0 && j == i+1 {
			return "", false
		}
		i = j
	}
	if intDigits == 0 && i == 0 {
		return "", false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := digits(s, j); k > j {
			i = k
		}
	}

	if !onlyRunes(s[i:], "uUlLfF") {
		return "", false
	}
	return s[:i], true
}

func cutHexPrefix(s string) (string, bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return "", false
}

// hexDigits counts the leading hex digits of s.
func hexDigits(s string) int {
	n := 0
	for n < len(s) && isHex(s[n]) {
		n++
	}
	return n
}

// digits returns the index of the first non-digit in s at or after i.
func digits(s string, i int) int {
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func onlyRunes(s, set string) bool {
	for _, r := range s {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}

// unwrapParens strips parens enclosing all of s: "((1))" -> "1", but
// "(1)|(2)" is left alone.
func unwrapParens(s string) string {
	for len(s) >= 2 && s[0] == '(' && closingParen(s) == len(s)-1 {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// closingParen returns the index of the paren closing s[0], or -1.
func closingParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
