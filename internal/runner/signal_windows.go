//go:build windows

package runner

import "syscall"

var (
	kernel32                     = syscall.NewLazyDLL("kernel32.dll")
	procGenerateConsoleCtrlEvent = kernel32.NewProc("GenerateConsoleCtrlEvent")
)

// raiseInterrupt sends CTRL_C_EVENT (0) to the current process group (0).
func raiseInterrupt() {
	procGenerateConsoleCtrlEvent.Call(0, 0)
}
