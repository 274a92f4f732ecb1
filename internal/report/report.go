// Package report formats experiment results.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-meanci/internal/config"
	"github.com/aclements/go-meanci/internal/experiment"
)

// Write writes reports to w in the named format (see the Format
// constants in package config).
func Write(w io.Writer, format string, reports []experiment.Report) error {
	switch format {
	case config.FormatText:
		return WriteText(w, reports)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(reports), "encoding JSON report")
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return errors.Wrap(err, "encoding YAML report")
		}
		return errors.Wrap(enc.Close(), "encoding YAML report")
	}
	return errors.Errorf("unknown report format %q", format)
}

// WriteText writes reports in the plain text layout:
//
//	Method 1:
//
//	n = 5: 10.2
//	CI: [8.1, 12.3]
//
// with one "n =" stanza per estimate, each followed by a blank line.
func WriteText(w io.Writer, reports []experiment.Report) error {
	for _, rep := range reports {
		if _, err := fmt.Fprintf(w, "Method %d:\n\n", rep.Method); err != nil {
			return err
		}
		for _, e := range rep.Estimates {
			if _, err := fmt.Fprintf(w, "n = %d: %v\nCI: %v\n\n", e.N, e.Mean, e.CI); err != nil {
				return err
			}
		}
	}
	return nil
}
