package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"fuzzpick"
	"fuzzpick/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a config file")
		exact      = flag.Bool("exact", false, "Match by contiguous substring instead of fuzzy subsequence")
		prompt     = flag.String("prompt", "", "Text drawn before the pattern on the input line")
		pointer    = flag.String("pointer", "", "Glyph marking the row under the cursor")
		marker     = flag.String("marker", "", "Glyph marking toggled rows")
		logPath    = flag.String("log", "", "Append debug logs to this file")
	)
	var query string
	flag.StringVar(&query, "query", "", "Initial pattern")
	flag.StringVar(&query, "q", "", "Initial pattern (shorthand)")
	flag.Parse()

	// Set up logging; discarded unless a log file was asked for, so
	// stray log output cannot land on the terminal mid-session
	if *logPath != "" {
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	} else {
		log.SetOutput(io.Discard)
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.NewConfigService().LoadFromPath(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fuzzpick: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg, err = config.NewConfigService().Load()
		if err != nil {
			log.Printf("Error loading config: %v", err)
			cfg = config.DefaultConfig()
		}
	}

	// Flags override the config file
	if *exact {
		cfg.Matching.Exact = true
	}
	if *prompt != "" {
		cfg.UI.Prompt = *prompt
	}
	if *pointer != "" {
		cfg.UI.Pointer = *pointer
	}
	if *marker != "" {
		cfg.UI.Marker = *marker
	}

	candidates, err := readCandidates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fuzzpick: %v\n", err)
		os.Exit(1)
	}
	if candidates == nil {
		fmt.Fprintln(os.Stderr, "fuzzpick: no candidates: pass them as arguments or pipe them on stdin")
		os.Exit(1)
	}

	opts := []fuzzpick.Option{fuzzpick.WithConfig(cfg)}
	if query != "" {
		opts = append(opts, fuzzpick.WithInitialPattern(query))
	}

	// Piped candidates leave the keyboard on the controlling terminal
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		tty, err := fuzzpick.OpenTTY()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fuzzpick: %v\n", err)
			os.Exit(1)
		}
		defer tty.Close()
		opts = append(opts, fuzzpick.WithInput(tty))
	}

	if os.Getenv("FUZZPICK_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	selected, err := fuzzpick.Select(os.Stderr, candidates, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fuzzpick: %v\n", err)
		os.Exit(1)
	}

	for _, value := range selected {
		fmt.Println(value)
	}
}

// readCandidates takes positional arguments, or lines from standard
// input when candidates are piped in. A nil slice means neither source
// provided anything to pick from.
func readCandidates() ([]string, error) {
	if flag.NArg() > 0 {
		return flag.Args(), nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, nil
	}

	candidates := []string{}
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			candidates = append(candidates, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}
