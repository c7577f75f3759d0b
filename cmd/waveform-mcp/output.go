package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// render writes a result to stdout in the format chosen by --output.
// Text mode prints the report; json and yaml modes emit the structured
// result.
func render(result interface{}, report string) error {
	switch outputFlag {
	case "text", "":
		fmt.Println(report)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(result)
	default:
		return fail("unknown output format %q (want text, json, or yaml)", outputFlag)
	}
}
