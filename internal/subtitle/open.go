package subtitle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/mgpai22/srtkit/pkg/srt"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrNotUTF8 = errors.New("input is not valid UTF-8")

// Open reads and parses an .srt file.
func Open(path string, opts Options) (*File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".srt" {
		return nil, fmt.Errorf("unsupported subtitle format: %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}

	subs, err := parseBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Path: path, Subtitles: subs}, nil
}

// Read parses everything r yields.
func Read(r io.Reader, opts Options) ([]srt.Subtitle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading SRT input: %w", err)
	}
	return parseBytes(data, opts)
}

// swapped in tests, the real clipboard needs a display
var readClipboard = clipboard.ReadAll

// ReadClipboard parses the clipboard contents.
func ReadClipboard(opts Options) ([]srt.Subtitle, error) {
	text, err := readClipboard()
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard: %w", err)
	}
	return parseBytes([]byte(text), opts)
}

// Decode strips a byte order mark and returns the text as UTF-8. Input with
// a UTF-16 byte order mark is transcoded; anything else must be valid UTF-8.
func Decode(data []byte) (string, error) {
	if !hasUTF16BOM(data) && !utf8.Valid(data) {
		return "", ErrNotUTF8
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode input: %w", err)
	}
	return string(out), nil
}

func parseBytes(data []byte, opts Options) ([]srt.Subtitle, error) {
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return opts.parser().Parse(text)
}

func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE})
}
