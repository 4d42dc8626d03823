package cli

import (
	"fmt"

	"github.com/mgpai22/srtkit/internal/retime"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Move every subtitle earlier or later",
	Long: `Add a fixed offset to the start of every subtitle. Negative offsets move
subtitles earlier; starts never go below 00:00:00,000 or above 99:59:59,999.
Durations are unchanged.

Examples:
  srtkit shift movie.srt --by 1.5s
  srtkit shift movie.srt --by=-250ms -o fixed.srt
  srtkit shift movie.srt --ms -1200`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		Duration("by", 0, "Offset as a Go duration, e.g. 2s, -500ms, 1m30s")
	shiftCmd.Flags().
		Int64("ms", 0, "Offset in milliseconds, may be negative")

	shiftCmd.MarkFlagsMutuallyExclusive("by", "ms")
	shiftCmd.MarkFlagsOneRequired("by", "ms")
}

func runShift(cmd *cobra.Command, args []string) error {
	file, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to parse subtitles: %w", err)
	}

	subs := file.Subtitles
	if cmd.Flags().Changed("ms") {
		ms, _ := cmd.Flags().GetInt64("ms")
		logger.Infow("Shifting subtitles", "subtitles", len(subs), "ms", ms)
		file.Subtitles = retime.ShiftMillis(subs, ms)
	} else {
		by, _ := cmd.Flags().GetDuration("by")
		logger.Infow("Shifting subtitles", "subtitles", len(subs), "by", by)
		file.Subtitles = retime.Shift(subs, by)
	}

	return writeOutput(cmd, file)
}
