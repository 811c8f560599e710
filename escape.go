package stomp

import "strings"

// The five STOMP >= 1.1 header escape sequences (§4.B), bidirectional.
// Grounded on senojj-stomp/header.go, which uses the same
// strings.NewReplacer pairing for encode/decode.
var (
	headerEncoder = strings.NewReplacer(
		"\\", "\\\\",
		"\r", "\\r",
		"\n", "\\n",
		":", "\\c",
	)
	headerDecoder = strings.NewReplacer(
		"\\r", "\r",
		"\\n", "\n",
		"\\c", ":",
		"\\\\", "\\",
	)
)

// encodeHeaderToken escapes s for the wire. It is only ever called when the
// negotiated protocol version is >= 1.1; callers on 1.0 must pass s through
// unchanged.
func encodeHeaderToken(s string) string {
	return headerEncoder.Replace(s)
}

// decodeHeaderToken reverses encodeHeaderToken and validates that every
// backslash escape in s is one of the five recognized sequences.
func decodeHeaderToken(s string) (string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			continue
		}
		if i+1 >= len(s) {
			return "", NewMalformedHeader("trailing escape character in header token %q", s)
		}
		switch s[i+1] {
		case '\\', 'n', 'r', 'c':
			i++
		default:
			return "", NewMalformedHeader("invalid escape sequence \\%c in header token %q", s[i+1], s)
		}
	}
	return headerDecoder.Replace(s), nil
}
