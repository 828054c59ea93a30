package applog

import (
	"strings"
)

const hexDigits = "0123456789abcdef"

// sanitizeText hex-encodes control bytes as <xx> so one submitted
// message always renders as exactly one line in the output file.
// Multi-byte UTF-8 sequences pass through untouched.
func sanitizeText(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == 0x7f {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == 0x7f {
			b.WriteByte('<')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
			b.WriteByte('>')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
