package output

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// SanitizeBanner turns bytes received from a remote service into a single
// printable line. Control characters, line breaks and invalid UTF-8 become
// visible escapes:
//   - "SSH-2.0-OpenSSH_8.2\r\n" -> `SSH-2.0-OpenSSH_8.2\r\n`
//   - "hi\x1b[31m"              -> `hi\x1b[31m`
//   - "bad:\xff"                -> `bad:\xff`
//
// Backslashes are doubled so an escape can always be told apart from text
// the peer sent literally.
func SanitizeBanner(s string) string {
	if isPlain(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			appendEscapedByte(&b, s[i])
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsControl(r):
			appendEscapedRune(&b, r)
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func isPlain(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || r == '\\' || unicode.IsControl(r) {
			return false
		}
		i += size
	}
	return true
}

func appendEscapedByte(b *strings.Builder, bt byte) {
	b.WriteString(`\x`)
	b.WriteByte(hexDigits[bt>>4])
	b.WriteByte(hexDigits[bt&0x0f])
}

// Control runes are either C0/C1 (one byte escape) or, in principle, above
// the Latin-1 range; the latter keep a \u escape.
func appendEscapedRune(b *strings.Builder, r rune) {
	if r <= 0xFF {
		appendEscapedByte(b, byte(r))
		return
	}
	b.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(r>>uint(shift))&0x0f])
	}
}
