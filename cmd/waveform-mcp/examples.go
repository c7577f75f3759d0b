package main

import (
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples <waveform>",
	Short: "Show WAL examples tailored to a waveform's signals",
	Args:  cobra.ExactArgs(1),
	RunE:  runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	logger := newLogger(nil)
	cfg := mustLoadConfig(logger)
	eng := newEngine(cfg, logger)
	reg := loadRegistry(cfg, logger)

	res, err := eng.Examples(resolveWaveform(reg, args[0]))
	if err != nil {
		return err
	}
	return render(res, res.Report)
}
