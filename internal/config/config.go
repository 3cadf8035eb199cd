package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Page layout
	NavbarHeight   = 48
	SectionHeight  = 420
	ProgressHeight = 3
	MenuButtonSize = 32

	// Particle field
	ParticleCount   = 60
	MaxLinkDistance = 130

	// Terminal cells are mapped onto this many surface pixels.
	CellWidth  = 8
	CellHeight = 16

	WheelSpeed = 40

	envPrefix = "PORTFOLIO_"
)

const (
	HostWindow   = "window"
	HostTerminal = "terminal"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the runtime configuration. Defaults are overridden by a .env file,
// then by PORTFOLIO_* environment variables, then by command line flags.
type Config struct {
	Title        string
	Width        int
	Height       int
	Particles    int
	LinkDistance float64
	Seed         int64 // 0 seeds from the clock
	Host         string
	Sound        bool
	Debug        bool
}

func Default() Config {
	return Config{
		Title:        "Portfolio",
		Width:        WindowWidth,
		Height:       WindowHeight,
		Particles:    ParticleCount,
		LinkDistance: MaxLinkDistance,
		Host:         HostWindow,
		Sound:        true,
	}
}

// Load builds the configuration from envFile, the environment and args.
// A missing envFile is not an error.
func Load(envFile string, args []string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	fl := flag.NewFlagSet("portfolio-fx", flag.ContinueOnError)
	fl.StringVar(&cfg.Title, "title", cfg.Title, "window title and hero name")
	fl.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fl.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fl.IntVar(&cfg.Particles, "particles", cfg.Particles, "number of particles")
	fl.Float64Var(&cfg.LinkDistance, "link-distance", cfg.LinkDistance, "max distance of a connection line")
	fl.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time based")
	fl.StringVar(&cfg.Host, "host", cfg.Host, "window or terminal")
	fl.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play click cues")
	fl.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show frame statistics")
	if err := fl.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "TITLE"); ok {
		c.Title = v
	}
	if v, ok := lookup(envPrefix + "HOST"); ok {
		c.Host = v
	}
	ints := map[string]*int{
		"WIDTH":     &c.Width,
		"HEIGHT":    &c.Height,
		"PARTICLES": &c.Particles,
	}
	for k, dst := range ints {
		v, ok := lookup(envPrefix + k)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, k, err)
		}
		*dst = n
	}
	if v, ok := lookup(envPrefix + "LINK_DISTANCE"); ok {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sLINK_DISTANCE: %w", envPrefix, err)
		}
		c.LinkDistance = d
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = s
	}
	bools := map[string]*bool{
		"SOUND": &c.Sound,
		"DEBUG": &c.Debug,
	}
	for k, dst := range bools {
		v, ok := lookup(envPrefix + k)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, k, err)
		}
		*dst = b
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Particles < 0:
		return fmt.Errorf("%w: particle count %d", ErrInvalid, c.Particles)
	case c.LinkDistance <= 0:
		return fmt.Errorf("%w: link distance %v", ErrInvalid, c.LinkDistance)
	case c.Host != HostWindow && c.Host != HostTerminal:
		return fmt.Errorf("%w: host %q", ErrInvalid, c.Host)
	}
	return nil
}
