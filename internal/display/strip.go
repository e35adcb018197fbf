//go:build ws281x

package display

import (
	"fmt"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

// Strip drives a matrix built from one serpentine WS281x strip
type Strip struct {
	*Framebuffer
	strip *ws2811.WS2811
}

// NewStrip initialises a strip of rows x cols LEDs on gpioPin
func NewStrip(rows, cols, gpioPin, brightness int) (*Strip, error) {
	opt := ws2811.DefaultOptions
	opt.Channels[0].Brightness = brightness
	opt.Channels[0].GpioPin = gpioPin
	opt.Channels[0].LedCount = rows * cols
	opt.Channels[0].StripeType = ws2811.WS2811StripGRB

	strip, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create WS2811: %v", err)
	}
	if err := strip.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize WS2811: %v", err)
	}

	return &Strip{
		Framebuffer: NewFramebuffer(rows, cols),
		strip:       strip,
	}, nil
}

// Show writes the staged pixels to the strip. Brightness is applied by the
// strip hardware.
func (s *Strip) Show() error {
	serpentineFrame(s.Frame(), s.strip.Leds(0))
	if err := s.strip.Render(); err != nil {
		return fmt.Errorf("failed to render strip: %v", err)
	}
	return s.strip.Wait()
}

// SetBrightness sets the strip's hardware brightness
func (s *Strip) SetBrightness(brightness int) error {
	if brightness < 0 || brightness > MaxBrightness {
		return fmt.Errorf("brightness must be between 0 and %d", MaxBrightness)
	}
	s.strip.SetBrightness(0, brightness)
	return nil
}

// Close turns the strip off and releases it
func (s *Strip) Close() error {
	if s.strip != nil {
		s.strip.Fini()
		s.strip = nil
	}
	return nil
}
