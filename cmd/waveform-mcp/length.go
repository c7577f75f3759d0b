package main

import (
	"github.com/spf13/cobra"
)

var lengthCmd = &cobra.Command{
	Use:   "length <waveform>",
	Short: "Show the total number of time steps in a waveform",
	Args:  cobra.ExactArgs(1),
	RunE:  runLength,
}

func init() {
	rootCmd.AddCommand(lengthCmd)
}

func runLength(cmd *cobra.Command, args []string) error {
	logger := newLogger(nil)
	cfg := mustLoadConfig(logger)
	eng := newEngine(cfg, logger)
	reg := loadRegistry(cfg, logger)

	res, err := eng.WaveformLength(resolveWaveform(reg, args[0]))
	if err != nil {
		return err
	}
	return render(res, res.Report)
}
