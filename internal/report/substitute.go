package report

import "strings"

// Substitute replaces $name and ${name} placeholders in tmpl with values.
// "$$" yields a literal "$". Placeholders without a value, and any "$" not
// starting a valid placeholder, are copied through unchanged.
func Substitute(tmpl string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		if tmpl[i] != '$' {
			b.WriteByte(tmpl[i])
			i++
			continue
		}

		rest := tmpl[i+1:]
		switch {
		case strings.HasPrefix(rest, "$"):
			b.WriteByte('$')
			i += 2
			continue

		case strings.HasPrefix(rest, "{"):
			if end := strings.IndexByte(rest, '}'); end > 1 {
				name := rest[1:end]
				if identLen(name) == len(name) {
					if v, ok := values[name]; ok {
						b.WriteString(v)
						i += end + 2
						continue
					}
				}
			}

		default:
			if n := identLen(rest); n > 0 {
				if v, ok := values[rest[:n]]; ok {
					b.WriteString(v)
					i += n + 1
					continue
				}
			}
		}

		b.WriteByte('$')
		i++
	}

	return b.String()
}

// identLen returns the length of the identifier at the start of s:
// an ASCII letter or underscore followed by letters, digits or underscores.
func identLen(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return i
		}
	}
	return len(s)
}
