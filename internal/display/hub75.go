package display

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/warthog618/go-gpiocdev"

	"github.com/fcurrie/matrix-display-golang/internal/types"
	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
	"github.com/fcurrie/matrix-display-golang/pkg/gpio"
)

// HUB75 address lines A-E select one of at most 32 scan rows
const maxScanRows = 32

// SysfsChip selects the legacy sysfs GPIO interface instead of a GPIO
// character device
const SysfsChip = "sysfs"

// Line is a GPIO output line
type Line interface {
	SetValue(value int) error
	Close() error
}

// LineRequester requests offset on chip as an output driven low
type LineRequester func(chip string, offset int) (Line, error)

func requestLine(chip string, offset int) (Line, error) {
	if chip == SysfsChip {
		pin, err := gpio.NewPin(offset)
		if err != nil {
			return nil, err
		}
		return pin, nil
	}
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, err
	}
	return line, nil
}

// HUB75 drives a HUB75 panel by bit-banging GPIO lines. Each Show scans the
// panel once, clocking the upper and lower halves out together. Colours are
// 1 bit per channel.
type HUB75 struct {
	*Framebuffer

	cfg   types.HUB75Config
	lines map[int]Line
	bank  *rp1Bank
	log   logr.Logger
}

// NewHUB75 requests the configured lines from the GPIO character device,
// from sysfs when the chip is SysfsChip or from the RP1 registers when it
// is RP1Chip
func NewHUB75(rows, cols int, cfg types.HUB75Config, log logr.Logger) (*HUB75, error) {
	if cfg.Chip != RP1Chip && cfg.FallbackChip != RP1Chip {
		return newHUB75(rows, cols, cfg, requestLine, log)
	}

	bank, err := openRP1Bank(rp1Device)
	if err != nil {
		return nil, err
	}
	h, err := newHUB75(rows, cols, cfg, bank.requester(requestLine), log)
	if err != nil {
		bank.Close()
		return nil, err
	}
	h.bank = bank
	return h, nil
}

func newHUB75(rows, cols int, cfg types.HUB75Config, request LineRequester, log logr.Logger) (*HUB75, error) {
	if rows%2 != 0 || rows/2 > maxScanRows {
		return nil, fmt.Errorf("unsupported HUB75 height %d", rows)
	}

	h := &HUB75{
		Framebuffer: NewFramebuffer(rows, cols),
		cfg:         cfg,
		lines:       make(map[int]Line),
		log:         log,
	}

	log.V(1).Info("Requesting GPIO lines", "chip", cfg.Chip)
	for _, pin := range h.pins() {
		if _, ok := h.lines[pin]; ok || pin < 0 {
			continue
		}
		line, err := h.request(request, pin)
		if err != nil {
			h.Close()
			return nil, err
		}
		h.lines[pin] = line
	}
	return h, nil
}

// request tries the configured chip, then the fallback chip where GPIO
// numbering starts at FallbackOffset
func (h *HUB75) request(request LineRequester, pin int) (Line, error) {
	line, err := request(h.cfg.Chip, pin)
	if err == nil {
		return line, nil
	}
	if h.cfg.FallbackChip == "" {
		return nil, fmt.Errorf("failed to request GPIO pin %d: %w", pin, err)
	}

	h.log.V(1).Info("Trying fallback chip", "pin", pin, "chip", h.cfg.FallbackChip, "error", err.Error())
	line, err = request(h.cfg.FallbackChip, h.cfg.FallbackOffset+pin)
	if err != nil {
		return nil, fmt.Errorf("failed to request GPIO pin %d from %s: %w", pin, h.cfg.FallbackChip, err)
	}
	return line, nil
}

func (h *HUB75) pins() []int {
	c := h.cfg
	return []int{
		c.R1Pin, c.G1Pin, c.B1Pin,
		c.R2Pin, c.G2Pin, c.B2Pin,
		c.CLKPin, c.OEPin, c.LAPin,
		c.APin, c.BPin, c.CPin, c.DPin, c.EPin,
	}
}

// Close releases all GPIO lines
func (h *HUB75) Close() error {
	for pin, line := range h.lines {
		if err := line.Close(); err != nil {
			h.log.Error(err, "Failed to close GPIO line", "pin", pin)
		}
	}
	h.lines = make(map[int]Line)
	if h.bank != nil {
		err := h.bank.Close()
		h.bank = nil
		return err
	}
	return nil
}

// setPin sets a line; pins that were not requested are ignored
func (h *HUB75) setPin(pin int, value int) error {
	line, ok := h.lines[pin]
	if !ok {
		return nil
	}
	return line.SetValue(value)
}

func (h *HUB75) bit(level uint8) int {
	if int(level) > h.cfg.Threshold {
		return 1
	}
	return 0
}

// Show scans every row pair of the panel once
func (h *HUB75) Show() error {
	frame := h.Frame()
	half := frame.Height() / 2
	for scan := 0; scan < half; scan++ {
		if err := h.scanRow(frame, scan, half); err != nil {
			return fmt.Errorf("failed to scan row %d: %w", scan, err)
		}
	}
	return nil
}

func (h *HUB75) scanRow(frame *canvas.Canvas, scan, half int) error {
	c := h.cfg
	address := []int{c.APin, c.BPin, c.CPin, c.DPin, c.EPin}
	for i, pin := range address {
		if err := h.setPin(pin, (scan>>i)&1); err != nil {
			return err
		}
	}

	// blank the panel while shifting
	if err := h.setPin(c.OEPin, 1); err != nil {
		return err
	}

	for col := 0; col < frame.Width(); col++ {
		upper := frame.At(scan, col)
		lower := frame.At(scan+half, col)
		values := []struct {
			pin   int
			level uint8
		}{
			{c.R1Pin, upper.R}, {c.G1Pin, upper.G}, {c.B1Pin, upper.B},
			{c.R2Pin, lower.R}, {c.G2Pin, lower.G}, {c.B2Pin, lower.B},
		}
		for _, v := range values {
			if err := h.setPin(v.pin, h.bit(v.level)); err != nil {
				return err
			}
		}

		if err := h.setPin(c.CLKPin, 1); err != nil {
			return err
		}
		if err := h.setPin(c.CLKPin, 0); err != nil {
			return err
		}
	}

	if err := h.setPin(c.LAPin, 1); err != nil {
		return err
	}
	time.Sleep(time.Microsecond)
	if err := h.setPin(c.LAPin, 0); err != nil {
		return err
	}

	return h.setPin(c.OEPin, 0)
}

// BonnetPins is the Adafruit RGB Matrix Bonnet pinout
func BonnetPins() types.HUB75Config {
	return types.HUB75Config{
		Chip:           "gpiochip0",
		FallbackChip:   "gpiochip11",
		FallbackOffset: 512,
		R1Pin:          5,
		G1Pin:          13,
		B1Pin:          6,
		R2Pin:          12,
		G2Pin:          16,
		B2Pin:          23,
		CLKPin:         17,
		OEPin:          4,
		LAPin:          21,
		APin:           22,
		BPin:           26,
		CPin:           27,
		DPin:           20,
		EPin:           24,
		Threshold:      127,
	}
}
