// Package logging configures the process-wide logrus logger for
// command-line use.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// ConfigureCommandLineLogging sets up logrus to write human-readable,
// timestamped lines to out at the named level. Reports go to stdout,
// so callers normally pass os.Stderr.
func ConfigureCommandLineLogging(out io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(out)
	log.SetLevel(lvl)
	return nil
}
