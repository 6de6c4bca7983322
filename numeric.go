package dedalog

import "strconv"

// parseNumber attempts to read t as a number per spec §4.1: optional
// sign, one or more digits, optional fractional part, optional
// decimal exponent — which is exactly the grammar strconv.ParseFloat
// already accepts for base-10 literals, so no hand-rolled scanner is
// needed here.
func parseNumber(t Term) (float64, bool) {
	f, err := strconv.ParseFloat(string(t), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// formatNumber renders a float64 the way the engine prints numeric
// terms: integral doubles lose their fractional part (spec §4.1).
func formatNumber(f float64) Term {
	if f == float64(int64(f)) {
		return Term(strconv.FormatInt(int64(f), 10))
	}
	return Term(strconv.FormatFloat(f, 'g', -1, 64))
}
