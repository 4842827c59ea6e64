package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maxvaer/pather/internal/output"
)

// resultJSON is the JSON payload sent to the hook command via stdin.
type resultJSON struct {
	Word       string `json:"word"`
	URL        string `json:"url"`
	StatusCode int    `json:"status"`
	Class      string `json:"class"`
	Location   string `json:"location,omitempty"`
}

// placeholders maps command placeholders to the environment variables that
// carry their values. Values are never spliced into the command text: the
// URL, word and location come from the scanned server or the word list.
var placeholders = []struct {
	token, env string
}{
	{"{url}", "PATHER_URL"},
	{"{word}", "PATHER_WORD"},
	{"{status}", "PATHER_STATUS"},
	{"{class}", "PATHER_CLASS"},
	{"{location}", "PATHER_LOCATION"},
}

// Runner executes a shell command for each emitted result.
type Runner struct {
	cmd     string
	timeout time.Duration
	log     logrus.FieldLogger
}

// NewRunner creates a hook runner. cmd is the shell command to execute.
func NewRunner(cmd string, log logrus.FieldLogger) *Runner {
	return &Runner{cmd: cmd, timeout: 30 * time.Second, log: log}
}

// Expand replaces the {url}, {word}, {status}, {class} and {location}
// placeholders with quoted references to their PATHER_* variables.
func (r *Runner) Expand() string {
	pairs := make([]string, 0, 2*len(placeholders))
	for _, p := range placeholders {
		pairs = append(pairs, p.token, envRef(p.env))
	}
	return strings.NewReplacer(pairs...).Replace(r.cmd)
}

func environ(rec output.Record) []string {
	values := map[string]string{
		"PATHER_URL":      rec.URL,
		"PATHER_WORD":     rec.Word,
		"PATHER_STATUS":   strconv.Itoa(rec.StatusCode),
		"PATHER_CLASS":    rec.Class.String(),
		"PATHER_LOCATION": rec.Location,
	}
	env := os.Environ()
	for _, p := range placeholders {
		env = append(env, p.env+"="+values[p.env])
	}
	return env
}

// Run executes the hook command with the result as JSON on stdin. The
// command is killed when ctx ends or the timeout passes. Errors are logged
// but do not halt the run.
func (r *Runner) Run(ctx context.Context, rec output.Record) {
	data, err := json.Marshal(resultJSON{
		Word:       rec.Word,
		URL:        rec.URL,
		StatusCode: rec.StatusCode,
		Class:      rec.Class.String(),
		Location:   rec.Location,
	})
	if err != nil {
		r.log.WithError(err).Warn("hook: marshal failed")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	shell, args := shellCommand()
	cmd := exec.CommandContext(ctx, shell, append(args, r.Expand())...)
	cmd.Env = environ(rec)
	cmd.Stdin = bytes.NewReader(data)
	// Children of the shell may keep the output pipes open after it is killed.
	cmd.WaitDelay = 500 * time.Millisecond
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{
			"url":    rec.URL,
			"stderr": strings.TrimSpace(stderr.String()),
		}).Warn("hook: command failed")
		return
	}
	if len(out) > 0 {
		r.log.WithField("url", rec.URL).Info("hook: " + strings.TrimSpace(string(out)))
	}
}

func shellCommand() (string, []string) {
	if runtime.GOOS == "windows" {
		// Delayed expansion (!VAR!) happens after the line is parsed, so
		// metacharacters in the values are not interpreted.
		return "cmd", []string{"/V:ON", "/C"}
	}
	return "sh", []string{"-c"}
}

func envRef(name string) string {
	if runtime.GOOS == "windows" {
		return "!" + name + "!"
	}
	return `"$` + name + `"`
}
