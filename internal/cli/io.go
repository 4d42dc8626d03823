package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/mgpai22/srtkit/pkg/srt"
	"github.com/spf13/cobra"
)

// reads subtitles from the clipboard, a file argument or stdin. Path is only
// set for file input.
func readInput(cmd *cobra.Command, args []string) (*subtitle.File, error) {
	opts := subtitle.Options{RequireText: requireText(cmd)}
	fromClipboard, _ := cmd.Flags().GetBool("clipboard")

	switch {
	case fromClipboard && len(args) > 0:
		return nil, fmt.Errorf("--clipboard cannot be combined with a file argument")
	case fromClipboard:
		logger.Debugw("Reading clipboard")
		return fromSubtitles(subtitle.ReadClipboard(opts))
	case len(args) == 0 || args[0] == "-":
		logger.Debugw("Reading stdin")
		return fromSubtitles(subtitle.Read(cmd.InOrStdin(), opts))
	}

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("subtitle file not found: %s", path)
	}

	logger.Debugw("Parsing subtitle file", "input", path)
	return subtitle.Open(path, opts)
}

func fromSubtitles(subs []srt.Subtitle, err error) (*subtitle.File, error) {
	if err != nil {
		return nil, err
	}
	return &subtitle.File{Subtitles: subs}, nil
}

// writes rendered subtitles to the clipboard, --output or stdout
func writeOutput(cmd *cobra.Command, file *subtitle.File) error {
	subs := file.Subtitles
	toClipboard, _ := cmd.Flags().GetBool("to-clipboard")
	outputPath, _ := cmd.Flags().GetString("output")

	if toClipboard {
		logger.Infow("Copying output to clipboard", "subtitles", len(subs))
		return subtitle.WriteClipboard(subs)
	}

	if outputPath == "" || outputPath == "-" {
		return subtitle.WriteTo(cmd.OutOrStdout(), subs)
	}

	source := file.Path
	path := cfg.ResolveOutput(outputPath)
	if err := file.Write(path); err != nil {
		return err
	}
	logger.Infow("Wrote output file",
		"input", source,
		"output", path,
		"subtitles", len(subs),
	)
	return nil
}

// flag wins over the config file
func requireText(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("require-text") {
		v, _ := cmd.Flags().GetBool("require-text")
		return v
	}
	return cfg.RequireText
}
