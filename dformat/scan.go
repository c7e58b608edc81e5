package dformat

import (
	"strings"
)

type segmentKind int

const (
	segLiteral segmentKind = iota
	segToken
)

// segment is one piece of a scanned layout: literal text to copy, or a token key to look up.
type segment struct {
	kind    segmentKind
	text    string
	ordinal bool
}

type segments []segment

func (s *segments) literal(text string) {
	if text == "" {
		return
	}
	if n := len(*s); n > 0 && (*s)[n-1].kind == segLiteral {
		(*s)[n-1].text += text
		return
	}
	*s = append(*s, segment{kind: segLiteral, text: text})
}

func (s *segments) token(key string, ordinal bool) {
	*s = append(*s, segment{kind: segToken, text: key, ordinal: ordinal})
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// scanRuns scans a Bracketed layout.
//
//   - "[" opens an escape that runs to the last "]" before the next "[" (or the end of the
//     layout); its contents are literal, with any "]" inside removed.  A "[" with no such "]",
//     and any "]" outside an escape, is dropped.
//   - A maximal run of one repeated word character ("YYYY", "D", "ss") is a token key.  A single
//     "o" straight after the run marks the token as ordinal, unless the run is itself made of
//     "o"s.
//   - Everything else is literal.
func scanRuns(layout string) segments {
	var segs segments
	for i := 0; i < len(layout); {
		c := layout[i]
		switch {
		case c == '[':
			region := layout[i+1:]
			if next := strings.IndexByte(region, '['); next >= 0 {
				region = region[:next]
			}
			end := strings.LastIndexByte(region, ']')
			if end < 0 {
				i++
				continue
			}
			segs.literal(strings.ReplaceAll(region[:end], "]", ""))
			i += end + 2
		case c == ']':
			i++
		case isWordChar(c):
			j := i + 1
			for j < len(layout) && layout[j] == c {
				j++
			}
			key := layout[i:j]
			ordinal := c != 'o' && j < len(layout) && layout[j] == 'o'
			if ordinal {
				j++
			}
			segs.token(key, ordinal)
			i = j
		default:
			j := i + 1
			for j < len(layout) && !isWordChar(layout[j]) && layout[j] != '[' && layout[j] != ']' {
				j++
			}
			segs.literal(layout[i:j])
			i = j
		}
	}
	return segs
}

// scanChars scans a SingleChar layout: every byte that is a key in table is a token, and
// everything else is literal.
func scanChars(layout string, table Table) segments {
	var segs segments
	start := 0
	for i := 0; i < len(layout); i++ {
		if _, ok := table.tokens[layout[i:i+1]]; !ok || layout[i] >= 0x80 {
			continue
		}
		segs.literal(layout[start:i])
		segs.token(layout[i:i+1], false)
		start = i + 1
	}
	segs.literal(layout[start:])
	return segs
}
