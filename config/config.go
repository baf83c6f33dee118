// Package config resolves runtime options from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
// Nothing is ever written back; hotkey bindings are not configurable.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envLang   = "SCREENCOVER_LANG"
	envEager  = "SCREENCOVER_EAGER"
	envSound  = "SCREENCOVER_SOUND"
	envOpaque = "SCREENCOVER_OPAQUE"
	envNudge  = "SCREENCOVER_NUDGE"

	defaultNudge = 100 * time.Millisecond
)

// Config holds the overlay's runtime options.
type Config struct {
	Lang   string
	Eager  bool
	Sound  bool
	Opaque bool
	Nudge  time.Duration
}

// Load reads envFile (missing files are ignored), then the environment,
// then args.
func Load(envFile string, args []string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Lang:  os.Getenv(envLang),
		Sound: true,
		Nudge: defaultNudge,
	}
	var err error
	if cfg.Eager, err = envBool(envEager, false); err != nil {
		return nil, err
	}
	if cfg.Sound, err = envBool(envSound, true); err != nil {
		return nil, err
	}
	if cfg.Opaque, err = envBool(envOpaque, false); err != nil {
		return nil, err
	}
	if v := os.Getenv(envNudge); v != "" {
		if cfg.Nudge, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envNudge, err)
		}
	}

	fset := flag.NewFlagSet("screencover", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.StringVar(&cfg.Lang, "lang", cfg.Lang, "Force the interface language (en, pt, es, ru)")
	fset.BoolVar(&cfg.Eager, "eager", cfg.Eager, "Show the cover as soon as the app starts")
	fset.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play a short tone when the cover is shown or hidden")
	fset.BoolVar(&cfg.Opaque, "opaque", cfg.Opaque, "Paint the cover black instead of transparent")
	fset.DurationVar(&cfg.Nudge, "nudge", cfg.Nudge, "Wake interval for pending hotkey commands")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Nudge <= 0 {
		return nil, fmt.Errorf("nudge interval must be positive (got %v)", cfg.Nudge)
	}
	return cfg, nil
}

func envBool(name string, def bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return b, nil
}
