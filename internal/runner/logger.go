package runner

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/maxvaer/pather/internal/config"
)

// NewLogger returns the stderr logger for a run. Quiet keeps warnings and
// errors only; verbose adds per-probe debug lines.
func NewLogger(opts *config.Options, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    opts.NoColor,
		PadLevelText:     true,
	})
	switch {
	case opts.Quiet:
		log.SetLevel(logrus.WarnLevel)
	case opts.Verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
