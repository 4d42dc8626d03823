package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse subtitles and print one line per record",
	Long: `Parse an SRT file and print each record as its position, start, end and
quoted text separated by tabs. Parsing stops at the first malformed line and
reports it.

Examples:
  srtkit parse movie.srt
  cat movie.srt | srtkit parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	file, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to parse subtitles: %w", err)
	}

	out := cmd.OutOrStdout()
	for i, sub := range file.Subtitles {
		fmt.Fprintf(out, "%d\t%s\t%s\t%q\n", i+1, sub.Start, sub.End(), sub.Text)
	}
	return nil
}
