// Package checksum implements the two check-digit algorithms used by
// FEBRABAN payment codes. Inputs must contain only ASCII digits; callers
// validate before computing.
package checksum

// Mod10 returns the modulo-10 check digit for a digit string. Digits are
// weighted 2,1,2,1,... from right to left; two-digit products contribute
// the sum of their decimal digits. The check digit completes the total to
// the next multiple of 10, or is 0 when the total already is one.
func Mod10(digits string) int {
	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		p := int(digits[i]-'0') * weight
		if p >= 10 {
			p = p/10 + p%10
		}
		sum += p
		if weight == 2 {
			weight = 1
		} else {
			weight = 2
		}
	}
	r := sum % 10
	if r == 0 {
		return 0
	}
	return 10 - r
}

// Mod11 returns the modulo-11 check digit for a digit string. Digits are
// weighted 2,3,...,9,2,3,... from right to left. The raw result is 11
// minus the total modulo 11; results of 0, 10 and 11 are defined to be 1,
// so Mod11 always returns a digit in 1..9.
func Mod11(digits string) int {
	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		if weight == 9 {
			weight = 2
		} else {
			weight++
		}
	}
	dv := 11 - sum%11
	if dv == 0 || dv == 10 || dv == 11 {
		return 1
	}
	return dv
}
