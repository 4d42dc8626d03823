package cli

import (
	"github.com/mgpai22/srtkit/internal/config"
	"github.com/mgpai22/srtkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfg     *config.Config
	logger  = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "srtkit",
	Short: "Parse, validate and retime SRT subtitle files",
	Long: `srtkit reads SubRip (.srt) subtitles, reports the first malformed line
precisely, and writes them back out in canonical form.

Input is a file argument, stdin when no file is given, or the clipboard
with --clipboard. Output goes to stdout unless --output or --to-clipboard
is set.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger = logging.NewLogger(verbose || cfg.Verbose)
		if cfg.Path() != "" {
			logger.Debugw("Loaded config", "path", cfg.Path())
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		String("config", "", "Config file (default ./"+config.DefaultPath+" when present)")
	rootCmd.PersistentFlags().
		Bool("require-text", false, "Reject subtitles with an empty text section")
	rootCmd.PersistentFlags().
		Bool("clipboard", false, "Read input from the clipboard")
	rootCmd.PersistentFlags().
		Bool("to-clipboard", false, "Copy the output to the clipboard")
}
