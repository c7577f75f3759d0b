package main

import (
	"github.com/spf13/cobra"
)

var signalsPattern string

var signalsCmd = &cobra.Command{
	Use:   "signals <waveform>",
	Short: "List signals in a waveform",
	Long: `List the signals of a waveform trace, optionally filtered by a
regular expression matched anywhere in the dotted signal name.

Examples:
  waveform-mcp signals build/counter_tb.vcd
  waveform-mcp signals counter --pattern 'dut\.'`,
	Args: cobra.ExactArgs(1),
	RunE: runSignals,
}

func init() {
	signalsCmd.Flags().StringVar(&signalsPattern, "pattern", "", "Regex pattern to filter signals")
	rootCmd.AddCommand(signalsCmd)
}

func runSignals(cmd *cobra.Command, args []string) error {
	logger := newLogger(nil)
	cfg := mustLoadConfig(logger)
	eng := newEngine(cfg, logger)
	reg := loadRegistry(cfg, logger)

	res, err := eng.SignalList(resolveWaveform(reg, args[0]), signalsPattern)
	if err != nil {
		return err
	}
	return render(res, res.Report)
}
