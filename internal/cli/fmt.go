package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [subtitle_file]",
	Short: "Rewrite subtitles in canonical form",
	Long: `Parse an SRT file and render it again. Records are renumbered from 1,
line endings become "\n" and runs of blank lines collapse to one.

Examples:
  srtkit fmt movie.srt -o movie.clean.srt
  srtkit fmt --clipboard --to-clipboard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	file, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to parse subtitles: %w", err)
	}

	logger.Infow("Formatting subtitles", "subtitles", len(file.Subtitles))
	return writeOutput(cmd, file)
}
