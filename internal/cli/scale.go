package cli

import (
	"fmt"
	"strconv"

	"github.com/mgpai22/srtkit/internal/retime"
	"github.com/spf13/cobra"
)

var scaleCmd = &cobra.Command{
	Use:   "scale <factor> [subtitle_file]",
	Short: "Stretch or compress subtitle timing by a factor",
	Long: `Multiply the start and duration of every subtitle by a factor, e.g. to
convert between frame rates. Results are truncated to whole milliseconds.
The factor must be positive; put "--" before an argument starting with "-"
so it is not read as a flag.

Examples:
  srtkit scale 1.25 movie.srt
  srtkit scale 0.959 movie.srt -o movie.25fps.srt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, args []string) error {
	factor, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid scale factor %q: %w", args[0], err)
	}
	if err := retime.ValidateFactor(factor); err != nil {
		return err
	}

	file, err := readInput(cmd, args[1:])
	if err != nil {
		return fmt.Errorf("failed to parse subtitles: %w", err)
	}

	logger.Infow("Scaling subtitles", "subtitles", len(file.Subtitles), "factor", factor)
	file.Subtitles = retime.Scale(file.Subtitles, factor)
	return writeOutput(cmd, file)
}
