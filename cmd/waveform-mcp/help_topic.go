package main

import (
	"github.com/spf13/cobra"
)

var walHelpCmd = &cobra.Command{
	Use:   "wal-help [topic]",
	Short: "Show built-in WAL documentation",
	Long: `Show built-in WAL (Waveform Analysis Language) documentation.

Topics: overview, functions, examples, debugging, syntax. With no topic
the overview is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWalHelp,
}

func init() {
	rootCmd.AddCommand(walHelpCmd)
}

func runWalHelp(cmd *cobra.Command, args []string) error {
	logger := newLogger(nil)
	cfg := mustLoadConfig(logger)
	eng := newEngine(cfg, logger)

	topic := ""
	if len(args) == 1 {
		topic = args[0]
	}
	res := eng.Help(topic)
	return render(res, res.Report)
}
