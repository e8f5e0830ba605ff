package str

import "strings"

// ToScreamingSnakeCase transforms a given string into screaming snake case format.
//
// Every upper case letter and digit opens a new word, '-' and '_' are separators.
func ToScreamingSnakeCase(in string) string {
	in = strings.TrimSpace(in)
	if len(in) == 0 {
		return in
	}

	sb := strings.Builder{}
	sb.Grow(len(in) + len(in)/3)

	for i, b := range []byte(in) {
		separator, write := classify(b)
		if i > 0 && separator {
			sb.WriteByte('_')
		}
		if write {
			sb.WriteByte(toUpper(b))
		}
	}

	return sb.String()
}

// EnvName builds an environment variable name out of a prefix and a path of setting names,
// e.g. EnvName("jsc", "compat", "truthyLookup") gives JSC_COMPAT_TRUTHY_LOOKUP.
func EnvName(prefix string, path ...string) string {
	parts := make([]string, 0, len(path)+1)
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		parts = append(parts, strings.ToUpper(prefix))
	}
	for _, p := range path {
		if p = ToScreamingSnakeCase(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "_")
}

func classify(b byte) (separator bool, write bool) {
	switch {
	case 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true, true
	case b == '_' || b == '-':
		return true, false
	default:
		return false, true
	}
}

func toUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
