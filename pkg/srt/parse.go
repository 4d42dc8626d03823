package srt

import "strings"

const divider = " --> "

// Parser holds the parse policies. The zero value is ready to use.
type Parser struct {
	// RequireText rejects records whose text section is empty or absent
	// with MissingText instead of accepting an empty Text.
	RequireText bool
}

// Parse parses text with the default policies.
func Parse(text string) ([]Subtitle, error) {
	return Parser{}.Parse(text)
}

// Parse turns a full SRT document into records. The returned error, if any,
// is an *Error and no partial result is returned.
func (p Parser) Parse(text string) ([]Subtitle, error) {
	c := newCursor(text)
	var parsed []Subtitle

	for {
		// seek id
		line, ok := c.next()
		for ok && line == "" {
			line, ok = c.next()
		}
		if !ok {
			return parsed, nil
		}

		if !isDigits(line) {
			return nil, newError(c.lineNum, InvalidID)
		}

		line, ok = c.next()
		if !ok {
			return nil, newError(c.lineNum+1, InvalidTimestampLine)
		}
		start, duration, err := parseTimestampLine(line, c.lineNum)
		if err != nil {
			return nil, err
		}

		body, ok := p.readText(c)
		if !ok {
			return nil, newError(c.lineNum, MissingText)
		}

		parsed = append(parsed, Subtitle{
			Start:    start,
			Duration: duration,
			Text:     body,
		})
	}
}

// readText consumes the text section and the blank line ending it. It
// reports false if text is required and the section is empty; the cursor is
// then on the offending line, or one past the end of input.
func (p Parser) readText(c *cursor) (string, bool) {
	var lines []string
	for {
		line, ok := c.next()
		if !ok {
			if len(lines) == 0 {
				c.lineNum++
			}
			break
		}
		line = strings.TrimRight(line, "\r")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 && p.RequireText {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func parseTimestampLine(line string, lineNum int) (Timestamp, Duration, error) {
	start, rest, ok := parseTimestamp(line)
	if !ok {
		return Timestamp{}, Duration{}, newError(lineNum, InvalidTimestampStart)
	}

	rest, ok = strings.CutPrefix(rest, divider)
	if !ok {
		return Timestamp{}, Duration{}, newError(lineNum, InvalidTimestampDivider)
	}

	end, rest, ok := parseTimestamp(rest)
	if !ok {
		return Timestamp{}, Duration{}, newError(lineNum, InvalidTimestampEnd)
	}

	if end.Before(start) {
		return Timestamp{}, Duration{}, newError(lineNum, TimestampEndBeforeStart)
	}

	if rest != "" {
		return Timestamp{}, Duration{}, newError(lineNum, InvalidTimestampLine)
	}

	return start, end.Sub(start), nil
}

// parseTimestamp reads a leading 01:23:45,678 and returns the remainder.
func parseTimestamp(s string) (Timestamp, string, bool) {
	const width = len("00:00:00,000")
	if len(s) < width ||
		s[2] != ':' || s[5] != ':' || s[8] != ',' {
		return Timestamp{}, s, false
	}

	hours, ok1 := parseDigits(s[0:2])
	minutes, ok2 := parseDigits(s[3:5])
	seconds, ok3 := parseDigits(s[6:8])
	millis, ok4 := parseDigits(s[9:12])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Timestamp{}, s, false
	}

	ts, ok := New(hours, minutes, seconds, millis)
	if !ok {
		return Timestamp{}, s, false
	}
	return ts, s[width:], true
}

func parseDigits(s string) (uint, bool) {
	var n uint
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < '0' || b > '9' {
			return 0, false
		}
		n = n*10 + uint(b-'0')
	}
	return n, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// cursor walks newline separated lines, tracking the 1-indexed number of the
// line last returned. A trailing "\n" does not start another line and one
// trailing "\r" is stripped from each line.
type cursor struct {
	rest    string
	done    bool
	lineNum int
}

func newCursor(text string) *cursor {
	return &cursor{rest: text, done: text == ""}
}

func (c *cursor) next() (string, bool) {
	if c.done {
		return "", false
	}
	c.lineNum++

	line, rest, found := strings.Cut(c.rest, "\n")
	if !found || rest == "" {
		c.done = true
	}
	c.rest = rest

	return strings.TrimSuffix(line, "\r"), true
}
