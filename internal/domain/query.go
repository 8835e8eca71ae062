package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Queries shorter than this never reach a provider.
const MinQueryLength = 3

// Selects which suggestion provider answers a query.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)

// ParseMode accepts "remote" or "local" in any case.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeRemote, ModeLocal:
		return m, nil
	default:
		return "", fmt.Errorf("parse mode: unknown suggestion mode %q", s)
	}
}

// QueryTooShort reports whether q falls under MinQueryLength once surrounding
// whitespace is removed. Length is counted in runes so "Ūva" counts as three.
func QueryTooShort(q string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(q)) < MinQueryLength
}
