// Package validation checks the character sets and length limits RP66 V1
// places on UNITS and IDENT fields (§4.1). It has no warning-escalation
// hook; the one high-compatibility check is in pkg/dlis.Writer.AddFrame.
package validation

import (
	"regexp"
	"strings"
)

// UnitsCharacters are the runes RP66 V1 permits in a UNITS field: letters,
// digits, space, and a small set of separator/punctuation characters.
const UnitsCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 -./(),"

// IdentCharacters are the runes permitted in an IDENT field: the same set as
// UNITS, without the parenthesis/comma separators that only make sense in
// compound unit expressions.
const IdentCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 -./"

// ValidUnits reports whether s contains only characters permitted in a
// UNITS field.
func ValidUnits(s string) bool {
	return validateRune(s, UnitsCharacters)
}

// ValidIdent reports whether s contains only characters permitted in an
// IDENT field and fits within the 255-byte USHORT length prefix.
func ValidIdent(s string) bool {
	return len(s) <= 255 && validateRune(s, IdentCharacters)
}

func validateRune(s string, allowed string) bool {
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

var unitsRegexp = regexp.MustCompile(`^[` + regexp.QuoteMeta(UnitsCharacters) + `]*$`)

// validateRegex is an alternate implementation of ValidUnits kept for
// benchmarking against the rune-loop version; see validate_test.go.
func validateRegex(s string) bool {
	return unitsRegexp.MatchString(s)
}
