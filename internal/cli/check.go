package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file]",
	Short: "Validate subtitles without printing them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := readInput(cmd, args)
		if err != nil {
			return fmt.Errorf("invalid subtitles: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d subtitles\n", len(file.Subtitles))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
