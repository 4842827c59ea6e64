//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package runner

// fixOutputProcessing is a no-op where raw mode leaves output processing
// alone (Windows) or termios is unavailable.
func fixOutputProcessing(fd int) {}
