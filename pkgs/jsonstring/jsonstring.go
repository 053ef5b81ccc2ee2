// Package jsonstring implements component F: JSON string decoding and
// a safety-biased encoder. Decode expands the standard JSON escapes
// (including surrogate pairs); Encode re-escapes a byte sequence so the
// result is safe to embed in HTML/URL contexts, per SPEC_FULL.md's
// fixed choice of extension.
package jsonstring

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Record is the StringRecord of spec §3.
type Record struct {
	Lexeme    string // original lexeme, including surrounding quotes
	Decoded   []byte
	Converted bool
}

// Decode decodes a JSON string lexeme (including its surrounding quotes)
// into its raw byte value. Non-UTF-8 bytes in the input are passed
// through unchanged, per §4.F.
func Decode(lexeme string) (Record, error) {
	rec := Record{Lexeme: lexeme}
	if len(lexeme) < 2 || lexeme[0] != '"' || lexeme[len(lexeme)-1] != '"' {
		return rec, fmt.Errorf("jsonstring: lexeme is not quoted: %q", lexeme)
	}
	body := lexeme[1 : len(lexeme)-1]

	var out []byte
	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			return rec, fmt.Errorf("jsonstring: trailing backslash")
		}
		switch body[i] {
		case '"':
			out = append(out, '"')
			i++
		case '\\':
			out = append(out, '\\')
			i++
		case '/':
			out = append(out, '/')
			i++
		case 'b':
			out = append(out, '\b')
			i++
		case 'f':
			out = append(out, '\f')
			i++
		case 'n':
			out = append(out, '\n')
			i++
		case 'r':
			out = append(out, '\r')
			i++
		case 't':
			out = append(out, '\t')
			i++
		case 'u':
			r, consumed, err := decodeUnicodeEscape(body, i+1)
			if err != nil {
				return rec, err
			}
			out = appendRune(out, r)
			i += 1 + consumed
		default:
			return rec, fmt.Errorf("jsonstring: invalid escape '\\%c'", body[i])
		}
	}

	rec.Decoded = out
	rec.Converted = true
	return rec, nil
}

// decodeUnicodeEscape reads one or two \uHHHH groups starting at offset
// start in body (start points just past the 'u'), combining a surrogate
// pair into a single rune. It returns the rune and the number of bytes
// of body consumed starting at start.
func decodeUnicodeEscape(body string, start int) (rune, int, error) {
	if start+4 > len(body) {
		return 0, 0, fmt.Errorf("jsonstring: truncated \\u escape")
	}
	hi, err := strconv.ParseUint(body[start:start+4], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("jsonstring: invalid \\u escape: %w", err)
	}
	r := rune(hi)

	if utf16.IsSurrogate(r) {
		if r < 0xDC00 { // high surrogate: expect a following \uHHHH low surrogate
			rest := start + 4
			if rest+6 > len(body) || body[rest] != '\\' || body[rest+1] != 'u' {
				return 0, 0, fmt.Errorf("jsonstring: lone high surrogate")
			}
			lo64, err := strconv.ParseUint(body[rest+2:rest+6], 16, 32)
			if err != nil {
				return 0, 0, fmt.Errorf("jsonstring: invalid low surrogate escape: %w", err)
			}
			combined := utf16.DecodeRune(r, rune(lo64))
			if combined == utf8.RuneError {
				return 0, 0, fmt.Errorf("jsonstring: invalid surrogate pair")
			}
			return combined, 4 + 6, nil
		}
		// A lone low surrogate with no preceding high surrogate.
		return 0, 0, fmt.Errorf("jsonstring: lone low surrogate")
	}

	return r, 4, nil
}

func appendRune(out []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(out, buf[:n]...)
}

// safeEscape is the set of ASCII characters that must always be
// \u-escaped on output even though they are not JSON-mandatory escapes,
// so that encoded output is safe to embed in HTML/URL contexts.
var safeEscape = map[byte]bool{
	'<': true, '>': true, '&': true, '%': true,
}

// Encode JSON-escapes data, quoting it, using the extension chosen in
// SPEC_FULL.md: standard JSON escapes for the mandatory set, \u00HH for
// the HTML/URL-sensitive ASCII set and any code point 0x80-0xFF, \uHHHH
// for a code point in 0x100-0xFFFF, and a UTF-16 surrogate pair (two
// \uHHHH groups) for a code point above 0xFFFF. A byte that isn't valid
// UTF-8 has no code point to escape and is written through unchanged.
func Encode(data []byte) string {
	var b strings.Builder
	b.WriteByte('"')

	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
			i++
		case c == '\\':
			b.WriteString(`\\`)
			i++
		case c == '\b':
			b.WriteString(`\b`)
			i++
		case c == '\f':
			b.WriteString(`\f`)
			i++
		case c == '\n':
			b.WriteString(`\n`)
			i++
		case c == '\r':
			b.WriteString(`\r`)
			i++
		case c == '\t':
			b.WriteString(`\t`)
			i++
		case c < 0x20:
			fmt.Fprintf(&b, `\u%04x`, c)
			i++
		case c < 0x80:
			if safeEscape[c] {
				fmt.Fprintf(&b, `\u00%02x`, c)
			} else {
				b.WriteByte(c)
			}
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				// Not valid UTF-8: there's no code point to escape here.
				// Leaving the byte as-is lets Decode's raw passthrough
				// reproduce it exactly; a \u00HH escape would instead
				// decode back as the UTF-8 encoding of U+00HH, a
				// different byte sequence.
				b.WriteByte(c)
				i++
				continue
			}
			switch {
			case r > 0xFFFF:
				r1, r2 := utf16.EncodeRune(r)
				fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
			case r < 0x100:
				fmt.Fprintf(&b, `\u00%02x`, r)
			default:
				fmt.Fprintf(&b, `\u%04x`, r)
			}
			i += size
		}
	}

	b.WriteByte('"')
	return b.String()
}
