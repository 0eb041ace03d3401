// =============================================================================
// goAML Report Validator - Primitive Checks
// =============================================================================
//
// Standalone checks with no rule-table context: the national identity card
// format test and the string-similarity ratio behind the SWIFT/institution
// name cross-check.
//
// =============================================================================

package validate

// ValidNIC reports whether nic matches one of the two Sri Lankan national
// identity card layouts.
//
// Old layout: 9 digits plus a letter. Length 10, or length 11 with a single
// space at offset 9. Digits 0-1 hold the birth year in [10,99]; digits 2-4
// hold the day of year in [1,366] for men or [501,866] for women. The final
// character is 'V' or 'X', case-insensitive.
//
// New layout: 12 digits. Digits 0-3 hold the birth year in [1910,2010];
// digits 4-6 hold the same day-of-year ranges.
func ValidNIC(nic string) bool {
	switch len(nic) {
	case 10, 11:
		if len(nic) == 11 && indexSpace(nic) != 9 {
			return false
		}
		year, ok := atoiExact(nic[0:2])
		if !ok || year < 10 || year > 99 {
			return false
		}
		day, ok := atoiExact(nic[2:5])
		if !ok || !validBirthDay(day) {
			return false
		}
		switch nic[len(nic)-1] {
		case 'V', 'v', 'X', 'x':
			return true
		}
		return false

	case 12:
		year, ok := atoiExact(nic[0:4])
		if !ok || year < 1910 || year > 2010 {
			return false
		}
		day, ok := atoiExact(nic[4:7])
		if !ok || !validBirthDay(day) {
			return false
		}
		return true
	}
	return false
}

func validBirthDay(day int) bool {
	return (day >= 1 && day <= 366) || (day >= 501 && day <= 866)
}

func indexSpace(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return i
		}
	}
	return -1
}

// atoiExact parses a string of only decimal digits. Signs, spaces, and any
// other characters fail the parse.
func atoiExact(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// SimilarityRatio scores how alike two strings are, in [0,1]. The score is
// 2*M/T where M is the total length of the best non-crossing common-substring
// alignment and T the combined length of both strings. Both strings empty
// scores 1. Callers compare the score strictly greater than a threshold.
func SimilarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	return 2 * float64(matchTotal(a, b)) / float64(len(a)+len(b))
}

// matchTotal sums the best common-substring alignment: take the longest
// common substring, then recurse into the pieces on either side of it.
func matchTotal(a, b string) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size + matchTotal(a[:ai], b[:bi]) + matchTotal(a[ai+size:], b[bi+size:])
}

// longestCommonSubstring returns the start offsets and length of the longest
// substring common to a and b. Ties resolve to the earliest offset in a, then
// the earliest in b.
func longestCommonSubstring(a, b string) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// runs[j] is the length of the common suffix of a[:i+1] and b[:j+1].
	runs := make([]int, len(b))
	prev := make([]int, len(b))
	for i := 0; i < len(a); i++ {
		runs, prev = prev, runs
		for j := 0; j < len(b); j++ {
			if a[i] != b[j] {
				runs[j] = 0
				continue
			}
			if j == 0 {
				runs[j] = 1
			} else {
				runs[j] = prev[j-1] + 1
			}
			if runs[j] > size {
				size = runs[j]
				ai = i - size + 1
				bi = j - size + 1
			}
		}
	}
	return ai, bi, size
}
