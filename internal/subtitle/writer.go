package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/mgpai22/srtkit/pkg/srt"
)

// writes the rendered subtitles to path, creating parent directories
func Write(path string, subs []srt.Subtitle) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(srt.Render(subs)), 0644); err != nil {
		return fmt.Errorf("failed to write SRT file: %w", err)
	}
	return nil
}

// writes the rendered subtitles to w
func WriteTo(w io.Writer, subs []srt.Subtitle) error {
	if _, err := io.WriteString(w, srt.Render(subs)); err != nil {
		return fmt.Errorf("failed to write SRT output: %w", err)
	}
	return nil
}

// copies the rendered subtitles to the system clipboard
func WriteClipboard(subs []srt.Subtitle) error {
	if err := clipboard.WriteAll(srt.Render(subs)); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
