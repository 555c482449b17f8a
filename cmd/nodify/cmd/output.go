package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func validateOutput(format string) error {
	if format != outputYAML && format != outputJSON {
		return fmt.Errorf("output format must be yaml or json, got %q", format)
	}

	return nil
}

// printReport writes v to w in the requested format.
func printReport(w io.Writer, format string, v any) error {
	var (
		marshalled []byte
		err        error
	)
	switch format {
	case outputYAML:
		marshalled, err = yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("fail to marshal yaml: %w", err)
		}
	case outputJSON:
		marshalled, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("fail to marshal json: %w", err)
		}
		marshalled = append(marshalled, '\n')
	default:
		return fmt.Errorf("output format was not validated: %q", format)
	}
	_, err = w.Write(marshalled)

	return err
}
