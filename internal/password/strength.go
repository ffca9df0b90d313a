// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package password provides the pure password helpers of the vault: a
// composition-based strength score and a random generator. Neither touches
// durable state.
package password

import "strings"

// Label classifies a strength score for display.
type Label string

// Strength labels, ordered weakest to strongest.
const (
	Weak      Label = "Weak"
	Medium    Label = "Medium"
	Strong    Label = "Strong"
	Excellent Label = "Excellent"
)

// symbolClass is the set of characters that count as a symbol for scoring.
// It is wider than the generator's symbol set on purpose: scoring accepts
// any common punctuation, generation sticks to shell-safe characters.
const symbolClass = "!@#$%^&*(),.?\":{}|<>_-+=[]\\;'`~"

// Score rates a password by composition. The scoring is additive and
// deterministic: three cumulative length tiers (8/12/16), half a point each
// for lower- and uppercase, one point each for a digit and a symbol. The
// label thresholds operate on the truncated integer score. This is a
// heuristic, not an entropy estimate.
func Score(pw string) (int, Label) {
	var score float64

	if len(pw) >= 8 {
		score++
	}
	if len(pw) >= 12 {
		score++
	}
	if len(pw) >= 16 {
		score++
	}
	if strings.ContainsFunc(pw, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		score += 0.5
	}
	if strings.ContainsFunc(pw, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		score += 0.5
	}
	if strings.ContainsFunc(pw, func(r rune) bool { return r >= '0' && r <= '9' }) {
		score++
	}
	if strings.ContainsAny(pw, symbolClass) {
		score++
	}

	n := int(score)
	switch {
	case n <= 2:
		return n, Weak
	case n <= 4:
		return n, Medium
	case n == 5:
		return n, Strong
	default:
		return n, Excellent
	}
}
