// Package srt parses and renders SubRip subtitle text.
//
// Parsing is fail-fast and reports the first violation with its line number.
// Rendering never fails and always renumbers records from 1.
package srt

import "fmt"

// Subtitle is a single record of a track.
//
// Text must not contain an empty line: the blank line is the only record
// delimiter, so such text renders fine but re-parses as more than one record.
// Ids are not stored; Render numbers records by position.
type Subtitle struct {
	Start    Timestamp
	Duration Duration
	Text     string
}

// End is always Start + Duration.
func (s Subtitle) End() Timestamp {
	return s.Start.Add(s.Duration)
}

func (s Subtitle) String() string {
	return fmt.Sprintf("%s --> %s\n%s", s.Start, s.End(), s.Text)
}
