package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/drone/envsubst"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fcurrie/matrix-display-golang/internal/display"
	"github.com/fcurrie/matrix-display-golang/internal/generators"
	"github.com/fcurrie/matrix-display-golang/internal/types"
)

// ErrInvalid is returned when a configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes environment variables that override file settings
const EnvPrefix = "MATRIX_"

// Config represents the application configuration
type Config struct {
	Display  types.DisplayConfig  `json:"display" yaml:"display"`
	Conveyor types.ConveyorConfig `json:"conveyor" yaml:"conveyor"`
	HUB75    types.HUB75Config    `json:"hub75" yaml:"hub75"`
	Rows     []types.RowConfig    `json:"rows" yaml:"rows"`
}

// LoadConfig loads the configuration from a JSON or YAML file
func LoadConfig(file string) (*Config, error) {
	dir, name := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	return LoadConfigFS(os.DirFS(dir), name)
}

// LoadConfigFS loads the configuration from name in fsys. ${VAR} references
// are expanded first, unset fields take their defaults and MATRIX_*
// variables override the result.
func LoadConfigFS(fsys fs.FS, name string) (*Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	expanded, err := envsubst.EvalEnv(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", name, err)
	}

	var cfg Config
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal([]byte(expanded), &cfg)
	default:
		err = json.Unmarshal([]byte(expanded), &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	if err := mergo.Merge(&cfg, *DefaultConfig()); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the default configuration: a 16x16 terminal
// showing a sine wave, a clock and the seconds.
func DefaultConfig() *Config {
	return &Config{
		Display: types.DisplayConfig{
			Backend:    "terminal",
			Width:      16,
			Height:     16,
			Brightness: display.MaxBrightness,
			Scale:      16,
			GPIOPin:    18,
		},
		Conveyor: types.ConveyorConfig{
			TickInterval:  types.Duration(30 * time.Millisecond),
			ReloadRetries: 2,
			Font:          "font5",
			FontSize:      8,
		},
		HUB75: display.BonnetPins(),
		Rows: []types.RowConfig{
			{Kind: "sine", Width: 16, Height: 6, ReloadWait: types.Duration(time.Second)},
			{Kind: "clock", ReloadWait: types.Duration(5 * time.Second)},
			{Kind: "seconds", ReloadWait: types.Duration(250 * time.Millisecond)},
		},
	}
}

// LoadEnv loads variables from .env style files into the environment.
// Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from MATRIX_* variables found by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"WIDTH":      &c.Display.Width,
		"HEIGHT":     &c.Display.Height,
		"BRIGHTNESS": &c.Display.Brightness,
		"ROTATION":   &c.Display.Rotation,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, v, ErrInvalid)
		}
		*dst = n
	}

	if v, ok := lookup(EnvPrefix + "BACKEND"); ok {
		c.Display.Backend = v
	}
	if v, ok := lookup(EnvPrefix + "FONT"); ok {
		c.Conveyor.Font = v
	}
	if v, ok := lookup(EnvPrefix + "TICK_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTICK_INTERVAL=%q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.Conveyor.TickInterval = types.Duration(d)
	}
	return nil
}

// Validate checks the configuration for values no display can use
func (c *Config) Validate() error {
	var problems []string
	d := c.Display

	if !contains(display.Backends, d.Backend) {
		problems = append(problems, fmt.Sprintf("unknown backend %q", d.Backend))
	}
	if d.Width <= 0 || d.Height <= 0 {
		problems = append(problems, fmt.Sprintf("display size %dx%d", d.Width, d.Height))
	}
	if d.Brightness < 0 || d.Brightness > display.MaxBrightness {
		problems = append(problems, fmt.Sprintf("brightness %d", d.Brightness))
	}
	switch d.Rotation {
	case 0, 90, 180, 270:
	default:
		problems = append(problems, fmt.Sprintf("rotation %d", d.Rotation))
	}
	if c.Conveyor.TickInterval.Std() <= 0 {
		problems = append(problems, fmt.Sprintf("tick interval %v", c.Conveyor.TickInterval.Std()))
	}
	if c.Conveyor.ReloadRetries < 0 {
		problems = append(problems, fmt.Sprintf("reload retries %d", c.Conveyor.ReloadRetries))
	}
	for i, row := range c.Rows {
		if !contains(generators.Kinds(), row.Kind) {
			problems = append(problems, fmt.Sprintf("row %d kind %q", i, row.Kind))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, ", "), ErrInvalid)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
