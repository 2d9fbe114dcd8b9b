package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupCLI configures the standard logrus logger for plain subcommands,
// writing to stderr so stdout stays scriptable.
func SetupCLI(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// SetupTUI configures logging for the interactive view. The TUI owns the
// terminal, so logs go to a file when debug is on and are discarded
// otherwise. The returned closer is nil when nothing was opened.
func SetupTUI(debug bool) (io.Closer, error) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	if !debug {
		logrus.SetOutput(io.Discard)
		logrus.SetLevel(logrus.WarnLevel)
		return nil, nil
	}
	f, err := os.OpenFile("wishtree.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	return f, nil
}
