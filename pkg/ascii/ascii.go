// Package ascii implements the line-oriented text convention that many
// Intcode programs use on top of their integer streams: each output value
// in 0..127 is a character, and input lines are sent as character codes
// terminated by a newline. Values outside the ASCII range are out-of-band
// results (a score, a damage report) and are reported separately.
package ascii

import (
	"strings"
)

// MaxASCII is the largest value treated as a character.
const MaxASCII = 127

// IsASCII reports whether v is a character code.
func IsASCII(v int64) bool {
	return v >= 0 && v <= MaxASCII
}

// Encode converts lines into input values, terminating each with '\n'.
func Encode(lines ...string) []int64 {
	var out []int64
	for _, line := range lines {
		out = append(out, EncodeString(line)...)
		out = append(out, '\n')
	}
	return out
}

// EncodeString converts s byte by byte without adding a terminator.
func EncodeString(s string) []int64 {
	out := make([]int64, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int64(s[i])
	}
	return out
}

// Decode splits output values into the text they spell and the
// non-character values, both in the order they appeared.
func Decode(values []int64) (string, []int64) {
	var sb strings.Builder
	var extra []int64
	for _, v := range values {
		if IsASCII(v) {
			sb.WriteByte(byte(v))
		} else {
			extra = append(extra, v)
		}
	}
	return sb.String(), extra
}

// Grid decodes output that renders a picture, one row per line, and
// returns the non-empty rows.
func Grid(values []int64) [][]byte {
	text, _ := Decode(values)
	var rows [][]byte
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			rows = append(rows, []byte(line))
		}
	}
	return rows
}
