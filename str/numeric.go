package str

import "strconv"

// ParseCanonicalInt parses a string holding an integer written in its canonical decimal form.
//
// "42" and "-7" are canonical, "042", "+1", "1.0", " 1" and "-0" are not. Strings that are
// canonical integers are the ones that collapse into positional keys when used as a key.
func ParseCanonicalInt(in string) (int, bool) {
	if len(in) == 0 || len(in) > 20 {
		return 0, false
	}

	digits := in
	if in[0] == '-' {
		digits = in[1:]
		if digits == "0" {
			return 0, false
		}
	}
	if len(digits) == 0 || (digits[0] == '0' && len(digits) > 1) {
		return 0, false
	}
	for _, b := range []byte(digits) {
		if b < '0' || b > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(in)
	if err != nil {
		// overflow, keep it as a plain string
		return 0, false
	}
	return n, true
}
