//go:build !windows

package runner

import (
	"os"
	"syscall"
)

// raiseInterrupt delivers SIGINT to this process so signal.NotifyContext in
// the command layer cancels the run.
func raiseInterrupt() {
	_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
}
