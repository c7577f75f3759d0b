package main

import (
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <waveform> <expression>",
	Short: "Evaluate a WAL expression against a waveform",
	Long: `Evaluate a WAL (Waveform Analysis Language) expression against a
trace. Failed expressions print remediation suggestions built from the
trace's actual signal names.

Examples:
  waveform-mcp eval build/counter_tb.vcd '(count (= tb.clk 1))'
  waveform-mcp eval counter '(find (> tb.dut.counter 10))'`,
	Args: cobra.ExactArgs(2),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	logger := newLogger(nil)
	cfg := mustLoadConfig(logger)
	eng := newEngine(cfg, logger)
	reg := loadRegistry(cfg, logger)

	res, err := eng.Execute(resolveWaveform(reg, args[0]), args[1])
	if err != nil {
		return err
	}
	return render(res, res.Report)
}
