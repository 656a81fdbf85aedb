package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nofmysfk/vertico/internal/app"
	"github.com/nofmysfk/vertico/internal/session"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPlacement = "VERTICO_PLACEMENT"
	envRows      = "VERTICO_ROWS"
	envFraction  = "VERTICO_FRACTION"
	envHideInput = "VERTICO_HIDE_INPUT"
	envPrompt    = "VERTICO_PROMPT"
	envInput     = "VERTICO_INPUT"
	envWidth     = "VERTICO_WIDTH"
	envHeight    = "VERTICO_HEIGHT"
	envVerbose   = "VERTICO_VERBOSE"
	envTrace     = "VERTICO_TRACE"
	envLogFile   = "VERTICO_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("vertico", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	placement := fs.String("placement", envOrDefault(env, envPlacement, "bottom-of-frame"), "panel placement (reuse-window, below-target, bottom-of-frame, side-left, side-right, side-top, side-bottom)")
	rows := fs.Int("rows", envOrInt(env, envRows, 0), "desired visible candidate rows (0 uses the fraction)")
	fraction := fs.Float64("fraction", envOrFloat(env, envFraction, 0), "panel size as a fraction of the frame (0 uses the layout default)")
	hideInput := fs.Bool("hide-input", envOrBool(env, envHideInput, false), "scroll the original input line out of view while the panel is bound")
	prompt := fs.String("prompt", envOrDefault(env, envPrompt, "> "), "prompt text shown before the query")
	input := fs.String("input", envOrDefault(env, envInput, ""), "candidate file, one entry per line (empty reads stdin)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "frame width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "frame height in rows (0 uses terminal height)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print the selection summary on exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *rows < 0 {
		return Config{}, fmt.Errorf("rows must be >= 0 (got %d)", *rows)
	}
	if *fraction < 0 || *fraction >= 1 {
		return Config{}, fmt.Errorf("fraction must be in [0, 1) (got %g)", *fraction)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if _, err := session.ParsePlacement(*placement); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Placement: *placement,
			Rows:      *rows,
			Fraction:  *fraction,
			HideInput: *hideInput,
			Prompt:    *prompt,
			InputPath: *input,
			Width:     *width,
			Height:    *height,
			Verbose:   *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"placement": *placement,
			"rows":      strconv.Itoa(*rows),
			"fraction":  strconv.FormatFloat(*fraction, 'g', -1, 64),
			"hideInput": strconv.FormatBool(*hideInput),
			"prompt":    *prompt,
			"input":     *input,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"verbose":   strconv.FormatBool(*verbose),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
