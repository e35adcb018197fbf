package types

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that decodes from a Go duration string
// ("30ms") or a number of seconds.
type Duration time.Duration

// Std returns the duration as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalJSON encodes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON decodes a duration string or seconds
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return d.set(v)
}

// UnmarshalYAML decodes a duration string or seconds
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v interface{}) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(value * float64(time.Second))
	case int:
		*d = Duration(time.Duration(value) * time.Second)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

// DisplayConfig represents the configuration for the display
type DisplayConfig struct {
	Backend    string `json:"backend" yaml:"backend"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Brightness int    `json:"brightness" yaml:"brightness"`
	Rotation   int    `json:"rotation" yaml:"rotation"`
	// Narrow draws one terminal character per pixel instead of two
	Narrow bool `json:"narrow" yaml:"narrow"`
	// NoColor disables terminal colour escapes
	NoColor bool `json:"no_color" yaml:"no_color"`
	// Scale is the SDL window size of one pixel
	Scale int `json:"scale" yaml:"scale"`
	// GPIOPin is the WS281x data pin
	GPIOPin int `json:"gpio_pin" yaml:"gpio_pin"`
}

// ConveyorConfig represents the configuration for the row scheduler
type ConveyorConfig struct {
	TickInterval  Duration `json:"tick_interval" yaml:"tick_interval"`
	AsyncReload   bool     `json:"async_reload" yaml:"async_reload"`
	ReloadRetries int      `json:"reload_retries" yaml:"reload_retries"`
	Font          string   `json:"font" yaml:"font"`
	FontSize      float64  `json:"font_size" yaml:"font_size"`
}

// HUB75Config represents the GPIO wiring of a HUB75 panel
type HUB75Config struct {
	Chip           string `json:"chip" yaml:"chip"`
	FallbackChip   string `json:"fallback_chip" yaml:"fallback_chip"`
	FallbackOffset int    `json:"fallback_offset" yaml:"fallback_offset"`

	R1Pin  int `json:"r1" yaml:"r1"`
	G1Pin  int `json:"g1" yaml:"g1"`
	B1Pin  int `json:"b1" yaml:"b1"`
	R2Pin  int `json:"r2" yaml:"r2"`
	G2Pin  int `json:"g2" yaml:"g2"`
	B2Pin  int `json:"b2" yaml:"b2"`
	CLKPin int `json:"clk" yaml:"clk"`
	OEPin  int `json:"oe" yaml:"oe"`
	LAPin  int `json:"lat" yaml:"lat"`
	APin   int `json:"a" yaml:"a"`
	BPin   int `json:"b" yaml:"b"`
	CPin   int `json:"c" yaml:"c"`
	DPin   int `json:"d" yaml:"d"`
	EPin   int `json:"e" yaml:"e"`

	// Threshold is the channel level above which a colour bit is driven high
	Threshold int `json:"threshold" yaml:"threshold"`
}

// SegmentConfig is one coloured piece of text
type SegmentConfig struct {
	Text  string `json:"text" yaml:"text"`
	Color string `json:"color" yaml:"color"`
}

// RowConfig describes the content of one display row
type RowConfig struct {
	// Kind is one of text, segments, clock, seconds, sine, random, svg
	Kind       string          `json:"kind" yaml:"kind"`
	Text       string          `json:"text,omitempty" yaml:"text,omitempty"`
	Color      string          `json:"color,omitempty" yaml:"color,omitempty"`
	Segments   []SegmentConfig `json:"segments,omitempty" yaml:"segments,omitempty"`
	ReloadWait Duration        `json:"reload_wait,omitempty" yaml:"reload_wait,omitempty"`
	Width      int             `json:"width,omitempty" yaml:"width,omitempty"`
	Height     int             `json:"height,omitempty" yaml:"height,omitempty"`
	Path       string          `json:"path,omitempty" yaml:"path,omitempty"`
}
