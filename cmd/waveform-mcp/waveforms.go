package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var waveformsCmd = &cobra.Command{
	Use:   "waveforms",
	Short: "List waveforms registered in the registry",
	RunE:  runWaveforms,
}

func init() {
	rootCmd.AddCommand(waveformsCmd)
}

func runWaveforms(cmd *cobra.Command, args []string) error {
	logger := newLogger(nil)
	cfg := mustLoadConfig(logger)
	reg := loadRegistry(cfg, logger)

	entries := reg.Entries()
	if len(entries) == 0 {
		return render(entries, "No waveforms registered.")
	}

	lines := []string{"Registered waveforms:"}
	for _, e := range entries {
		line := fmt.Sprintf("  %-16s %s", e.Alias, e.Path)
		if e.Description != "" {
			line += "  (" + e.Description + ")"
		}
		lines = append(lines, line)
	}
	return render(entries, strings.Join(lines, "\n"))
}
