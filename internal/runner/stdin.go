package runner

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/maxvaer/pather/internal/scanner"
)

// startStdinToggle puts a terminal stdin into raw mode and toggles the
// returned pauser on Enter or Space. Ctrl+C restores the terminal and
// re-raises SIGINT. If stdin is not a terminal it returns a nil pauser and
// a no-op cleanup.
func startStdinToggle(log logrus.FieldLogger) (pauser *scanner.Pauser, cleanup func()) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, func() {}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.WithError(err).Debug("could not enable raw terminal, pause disabled")
		return nil, func() {}
	}
	fixOutputProcessing(fd)

	pauser = scanner.NewPauser()
	cleanup = func() {
		pauser.Resume()
		_ = term.Restore(fd, oldState)
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}

			switch buf[0] {
			case 0x03: // Ctrl+C
				_ = term.Restore(fd, oldState)
				raiseInterrupt()
				return
			case '\r', '\n', ' ':
				if pauser.Toggle() {
					log.Info("Run PAUSED, press Enter or Space to resume")
				} else {
					log.Info("Run RESUMED")
				}
			}
		}
	}()

	return pauser, cleanup
}
