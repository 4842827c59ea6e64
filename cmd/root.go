package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/maxvaer/pather/internal/config"
	"github.com/maxvaer/pather/internal/runner"
	"github.com/maxvaer/pather/pkg/version"
)

// Exit codes.
const (
	exitError       = 1
	exitInterrupted = 130
)

var (
	opts       config.Options
	configFile string
)

type flagGroup struct {
	title string
	flags []string
}

var helpGroups = []flagGroup{
	{"TARGET", []string{"url", "wordlist"}},
	{"MATCHERS", []string{"match-code"}},
	{"FILTERS", []string{"filter-code"}},
	{"PERFORMANCE", []string{"threads", "timeout"}},
	{"HTTP", []string{"user-agent"}},
	{"OUTPUT", []string{"output", "format", "sort", "quiet", "verbose", "no-color", "no-progress", "on-result"}},
	{"CONFIGURATION", []string{"config"}},
}

// legacyFlags maps the two-letter single-dash flags to their long form.
// pflag would otherwise read -mc as -m -c.
var legacyFlags = map[string]string{
	"-mc": "--match-code",
	"-fc": "--filter-code",
}

var rootCmd = &cobra.Command{
	Use:     "pather -u <url with FUZZ> -w <wordlist> [flags]",
	Short:   "Concurrent path and subdomain discovery",
	Version: version.Version,
	Long: `pather substitutes every word of a wordlist into the FUZZ placeholder of
a URL, requests the result and reports what answered. Words of the form
"host/path" fill FUZZ with the host part and append the path.`,
	Example: `  pather -u https://example.com/FUZZ -w words.txt
  pather -u FUZZ.example.com -w subdomains.txt -t 50
  pather -u https://FUZZ.example.com -w words.txt -mc 200,301 -fc 404
  pather -u https://example.com/FUZZ -w words.txt -o results.txt
  pather -u https://example.com/FUZZ -w words.txt -o results.json --format json
  pather --config pather.yaml -u https://example.com/FUZZ`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			f, err := config.LoadFile(configFile)
			if err != nil {
				return err
			}
			f.Apply(&opts, cmd.Flags().Changed)
		}
		if opts.URL == "" || opts.WordlistPath == "" {
			_ = cmd.Help()
			fmt.Fprintln(os.Stderr)
		}
		return opts.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return runner.Run(ctx, &opts)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()

	// Target
	f.StringVarP(&opts.URL, "url", "u", "", "Target URL containing FUZZ (https:// is assumed without a scheme)")
	f.StringVarP(&opts.WordlistPath, "wordlist", "w", "", "Wordlist path, one word per line")

	// Performance
	f.IntVarP(&opts.Threads, "threads", "t", config.DefaultThreads, "Maximum number of concurrent requests")
	f.DurationVar(&opts.Timeout, "timeout", config.DefaultTimeout, "HTTP request timeout")

	// Filtering
	f.Var(&intSliceValue{target: &opts.MatchCodes}, "match-code", "Only show these status codes (comma-separated, alias -mc)")
	f.Var(&intSliceValue{target: &opts.FilterCodes}, "filter-code", "Hide these status codes, checked before --match-code (comma-separated, alias -fc)")

	// HTTP
	f.StringVar(&opts.UserAgent, "user-agent", "", "Custom User-Agent string")

	// Output
	f.StringVarP(&opts.OutputFile, "output", "o", "", "Append results to this file")
	f.StringVar(&opts.OutputFormat, "format", config.DefaultFormat, "Output file format: text, json, csv")
	f.StringVar(&opts.SortBy, "sort", "", "Sort results: status, url (buffers until the run completes)")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Results only, no banner or progress")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log unreachable and filtered URLs")
	f.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	f.BoolVar(&opts.NoProgress, "no-progress", false, "Disable the progress bar")
	f.StringVar(&opts.OnResultCmd, "on-result", "", "Shell command to run for each result (receives JSON on stdin)")

	// Configuration
	f.StringVarP(&configFile, "config", "c", "", "YAML file with default values for these flags")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := os.Stderr
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
		fmt.Fprintf(w, "\nFlags:\n")
		for _, g := range helpGroups {
			fmt.Fprintf(w, "\n%s:\n", g.title)
			for _, name := range g.flags {
				if f := cmd.Flags().Lookup(name); f != nil {
					fmt.Fprintln(w, formatFlag(f))
				}
			}
		}
		fmt.Fprintln(w)
	})
}

// Execute runs the root command and exits with a non-zero code on failure
// or interruption.
func Execute() {
	os.Args = rewriteLegacyFlags(os.Args)
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, runner.ErrInterrupted):
		fmt.Fprintln(os.Stderr, "\n[!] Keyboard Interrupted! Terminating workers...")
		os.Exit(exitInterrupted)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}

// rewriteLegacyFlags expands -mc/-fc, including the -mc=200 form.
func rewriteLegacyFlags(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		if long, ok := legacyFlags[name]; ok && i > 0 {
			if hasValue {
				arg = long + "=" + value
			} else {
				arg = long
			}
		}
		out[i] = arg
	}
	return out
}

// intSliceValue implements pflag.Value for comma-separated int slices.
type intSliceValue struct {
	target *[]int
}

func (v *intSliceValue) String() string {
	if v.target == nil || len(*v.target) == 0 {
		return ""
	}
	parts := make([]string, len(*v.target))
	for i, val := range *v.target {
		parts[i] = strconv.Itoa(val)
	}
	return strings.Join(parts, ",")
}

func (v *intSliceValue) Set(s string) error {
	parts := strings.Split(s, ",")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid status code %q: %w", p, err)
		}
		*v.target = append(*v.target, n)
	}
	return nil
}

func (v *intSliceValue) Type() string { return "ints" }

func formatFlag(f *pflag.Flag) string {
	var left string
	if f.Shorthand != "" {
		left = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		left = fmt.Sprintf("    --%s", f.Name)
	}

	typ := f.Value.Type()
	if typ != "bool" {
		left += " " + typ
	}

	// Pad to fixed column width for aligned descriptions.
	const col = 30
	for len(left) < col {
		left += " "
	}

	right := f.Usage
	def := f.DefValue
	if def != "" && def != "false" && def != "0" && def != "0s" && def != "[]" {
		right += fmt.Sprintf(" (default %s)", def)
	}

	return "   " + left + right
}
