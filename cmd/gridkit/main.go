// Command gridkit reads a grid puzzle from a file (or stdin) and prints the
// answers for one scenario, optionally with a coloured overlay of the grid.
//
// Usage:
//
//	gridkit -scenario maze input.txt
//	gridkit -scenario crucible -min-run 4 -max-run 10 < input.txt
//
// Blocks separated by blank lines are solved one after another.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/katalvlaran/gridkit/seq"
)

var log = logrus.New()

// config is the parsed command line.
type config struct {
	scenario string
	steps    int
	minRun   int
	maxRun   int
	color    string
	verbose  bool
	overlay  bool
	input    string
}

var errUsage = errors.New("usage")

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			// Already reported together with the flag usage.
			os.Exit(2)
		}
		log.WithError(err).Error("gridkit failed")
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.scenario, "scenario", "fences", "scenario to run: "+strings.Join(scenarioNames(), ", "))
	fs.IntVar(&cfg.steps, "steps", 64, "step budget for the garden walk, spin count for tilt")
	fs.IntVar(&cfg.minRun, "min-run", 1, "crucible: blocks to move before turning or stopping")
	fs.IntVar(&cfg.maxRun, "max-run", 3, "crucible: longest straight run")
	fs.StringVar(&cfg.color, "color", "auto", "colour output: auto, always or never")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.BoolVar(&cfg.overlay, "overlay", true, "print the grid with the answer highlighted")
	if err := fs.Parse(args); err != nil {
		// flag has printed the error and the usage.
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}

	fail := func(format string, a ...any) (config, error) {
		err := fmt.Errorf("%w: "+format, append([]any{errUsage}, a...)...)
		fmt.Fprintf(stderr, "gridkit: %v\n", err)
		fs.Usage()
		return cfg, err
	}
	switch fs.NArg() {
	case 0:
		cfg.input = "-"
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return fail("at most one input file, got %d", fs.NArg())
	}
	if _, ok := scenarios[cfg.scenario]; !ok {
		return fail("unknown scenario %q", cfg.scenario)
	}
	if !validColor(cfg.color) {
		return fail("-color must be auto, always or never, got %q", cfg.color)
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if err := setColor(cfg.color, stdout); err != nil {
		return err
	}

	text, err := readInput(cfg.input, stdin)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"scenario": cfg.scenario,
		"input":    cfg.input,
		"bytes":    len(text),
	}).Debug("loaded input")

	blocks := splitBlocks(text)
	for i, block := range blocks {
		out, err := scenarios[cfg.scenario](cfg, block)
		if err != nil {
			if len(blocks) > 1 {
				return fmt.Errorf("%s: block %d: %w", cfg.scenario, i+1, err)
			}
			return fmt.Errorf("%s: %w", cfg.scenario, err)
		}
		if len(blocks) > 1 {
			fmt.Fprintf(stdout, "block %d:\n", i+1)
		}
		for _, a := range out.answers {
			fmt.Fprintf(stdout, "%s: %s\n", a.label, answerStyle.Sprint(a.value))
		}
		if cfg.overlay && out.overlay != "" {
			fmt.Fprintln(stdout, out.overlay)
		}
	}
	return nil
}

// splitBlocks cuts text at blank lines. Runs of blank lines do not produce
// empty blocks.
func splitBlocks(text string) []string {
	lines := strings.Split(text, "\n")
	groups := seq.SplitBy(lines, func(l string) bool { return strings.TrimSpace(l) == "" })
	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) > 0 {
			blocks = append(blocks, strings.Join(g, "\n"))
		}
	}
	if len(blocks) == 0 {
		return []string{text}
	}
	return blocks
}

func validColor(mode string) bool {
	switch mode {
	case "auto", "always", "never":
		return true
	}
	return false
}

func setColor(mode string, stdout io.Writer) error {
	switch mode {
	case "always":
		color.Enable = true
	case "never":
		color.Enable = false
	case "auto":
		f, ok := stdout.(*os.File)
		color.Enable = ok && term.IsTerminal(int(f.Fd()))
	default:
		return fmt.Errorf("%w: -color must be auto, always or never", errUsage)
	}
	return nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
