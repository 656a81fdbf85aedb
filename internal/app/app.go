package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nofmysfk/vertico/internal/engine"
	"github.com/nofmysfk/vertico/internal/session"
	"github.com/nofmysfk/vertico/internal/surface"
	"github.com/nofmysfk/vertico/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Placement string
	Rows      int
	Fraction  float64
	HideInput bool
	Prompt    string
	InputPath string
	Width     int
	Height    int
	Verbose   bool
}

// Run bootstraps and executes the Bubble Tea program, printing the confirmed
// candidate to stdout.
func Run(cfg Config) error {
	placement, err := session.ParsePlacement(cfg.Placement)
	if err != nil {
		return fmt.Errorf("resolve placement: %w", err)
	}
	policy := session.Policy{Placement: placement, Rows: cfg.Rows, Fraction: cfg.Fraction}

	candidates, err := readCandidates(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read candidates: %w", err)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	layout := surface.New(width, height, surface.DefaultLineHeight)
	eng := engine.New(cfg.Prompt, candidates)
	manager := session.NewManager(layout, eng)
	manager.Enable(policy, cfg.HideInput)

	model := ui.NewModel(layout, eng, manager, policy, cfg.Width, cfg.Height, cfg.Verbose)
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if cfg.InputPath == "" {
		// Stdin carried the candidates; key input has to come from the tty.
		opts = append(opts, tea.WithInputTTY())
	}
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(*ui.Model); ok {
		if value, chose := m.Result(); chose {
			fmt.Println(value)
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "selected %q\n", value)
			}
		}
	}
	return nil
}

// readCandidates loads one candidate per line, an optional tab-separated
// annotation after the value.
func readCandidates(path string) ([]engine.Candidate, error) {
	var r io.Reader
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return ParseCandidates(r)
}

// ParseCandidates reads candidates from r: one per line, "value\tannotation".
func ParseCandidates(r io.Reader) ([]engine.Candidate, error) {
	var out []engine.Candidate
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		value, annotation, _ := strings.Cut(line, "\t")
		out = append(out, engine.Candidate{Value: value, Annotation: annotation})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
