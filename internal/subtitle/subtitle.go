package subtitle

import (
	"github.com/mgpai22/srtkit/pkg/srt"
)

// parsed SRT file
type File struct {
	Path      string
	Subtitles []srt.Subtitle
}

// parse policies applied when reading
type Options struct {
	RequireText bool
}

func (o Options) parser() srt.Parser {
	return srt.Parser{RequireText: o.RequireText}
}

// Write renders the file to path and records it as the file's Path.
func (f *File) Write(path string) error {
	if err := Write(path, f.Subtitles); err != nil {
		return err
	}
	f.Path = path
	return nil
}
