// Package rulecount implements the source-measurement engine: it scans a
// candidate C source and computes the two IOCCC rule-compliance metrics
// (component B of the CORE, built on pkgs/scanner's primitives).
package rulecount

import "github.com/ioccc-tools/mkiocccentry-core/pkgs/scanner"

// Metrics is the source-metric record described in spec §3.
type Metrics struct {
	Rule2aSize int64
	Rule2bSize int64

	CharWarning     bool
	NULWarning      bool
	TrigraphWarning bool
	WordbufWarning  bool
	UngetcWarning   bool
}

// Count scans src and returns its Metrics. Count never fails: an empty
// source yields a zero-valued Metrics, which is a valid outcome.
func Count(src []byte) Metrics {
	s := scanner.New(src)

	var m Metrics
	for {
		unit, ok := s.Next()
		if !ok {
			break
		}
		m.Rule2aSize += int64(unit.RawLen)
		m.Rule2bSize += int64(weight(unit))
	}

	m.CharWarning = s.CharWarning
	m.NULWarning = s.NULWarning
	m.TrigraphWarning = s.TrigraphWarning
	m.WordbufWarning = s.WordbufWarning
	m.UngetcWarning = s.UngetcWarning
	return m
}

// weight implements the rule 2b weighting table (spec §3, §4.B): a
// constant of the system. Whitespace, comments, ignored keywords, and
// the backslash-newline line-splice all contribute zero. String and
// character literals contribute exactly one regardless of their internal
// length. Everything else contributes its derived (post trigraph
// substitution) byte length.
func weight(u scanner.Unit) int {
	switch u.Class {
	case scanner.Whitespace, scanner.Comment, scanner.KeywordIgnored, scanner.PunctIgnored:
		return 0
	case scanner.StringLit, scanner.CharLit:
		return 1
	default:
		if len(u.Derived) == 0 {
			// word-buffer overflow: the identifier was never buffered,
			// but it is still exactly one counted unit.
			return 1
		}
		return len(u.Derived)
	}
}
