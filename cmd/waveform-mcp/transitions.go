package main

import (
	"github.com/spf13/cobra"
)

var (
	transitionsStart int
	transitionsEnd   int
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions <waveform> <signal>",
	Short: "Scan a signal for value changes",
	Long: `Scan a signal for value changes within a time range. An end time of
zero means the last time step of the trace.

Examples:
  waveform-mcp transitions build/counter_tb.vcd tb.dut.counter
  waveform-mcp transitions counter tb.clk --start 10 --end 50`,
	Args: cobra.ExactArgs(2),
	RunE: runTransitions,
}

func init() {
	transitionsCmd.Flags().IntVar(&transitionsStart, "start", 0, "Start time in simulation time units")
	transitionsCmd.Flags().IntVar(&transitionsEnd, "end", 0, "End time (0 = end of simulation)")
	rootCmd.AddCommand(transitionsCmd)
}

func runTransitions(cmd *cobra.Command, args []string) error {
	logger := newLogger(nil)
	cfg := mustLoadConfig(logger)
	eng := newEngine(cfg, logger)
	reg := loadRegistry(cfg, logger)

	res, err := eng.Transitions(resolveWaveform(reg, args[0]), args[1], transitionsStart, transitionsEnd)
	if err != nil {
		return err
	}
	return render(res, res.Report)
}
