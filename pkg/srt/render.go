package srt

import (
	"strconv"
	"strings"
)

// Render writes subs as SRT text, numbering records from 1. Records are
// separated by a single blank line and an empty slice renders as "".
func Render(subs []Subtitle) string {
	var sb strings.Builder
	for i, sub := range subs {
		if i > 0 {
			sb.WriteByte('\n')
		}

		// index (1-based)
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteByte('\n')

		// 00:00:00,000 --> 00:00:00,000 followed by the text
		sb.WriteString(sub.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
