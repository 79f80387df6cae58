package company

import (
	"fmt"
	"strconv"
	"strings"
)

// CodeWidth is the canonical width of company, location and financial
// year codes.
const CodeWidth = 2

// FormatCode normalizes an identifier to its canonical zero-padded form.
// Values that parse as a non-negative integer are padded to CodeWidth
// digits; anything else is returned unchanged so legacy identifiers
// survive round-trips through the formatter.
func FormatCode(raw string) string {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return raw
	}
	return fmt.Sprintf("%0*d", CodeWidth, n)
}

// NextCode computes the next identifier for a scope given the codes that
// already exist in it. Non-numeric codes are ignored when finding the
// current maximum; an empty scope starts at "01".
func NextCode(existing []string) string {
	max := 0
	for _, code := range existing {
		n, err := strconv.Atoi(strings.TrimSpace(code))
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%0*d", CodeWidth, max+1)
}
