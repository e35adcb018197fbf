package display

import (
	"fmt"
	"sync"

	"github.com/fcurrie/matrix-display-golang/pkg/mmap"
)

// RP1Chip drives GPIO lines through the Raspberry Pi 5 RP1 registered IO
// block instead of a GPIO character device
const RP1Chip = "rp1"

// RP1 bank 0 layout as exposed by /dev/gpiomem0
const (
	rp1Device   = "/dev/gpiomem0"
	rp1MapSize  = 0x30000
	rp1IOBank   = 0x00000
	rp1RIOBank  = 0x10000
	rp1PadsBank = 0x20000
	rp1Pins     = 28

	rioOut   = 0x00
	rioOE    = 0x04
	rioSet   = 0x2000
	rioClear = 0x3000

	funcSelRIO   = 5
	padOutputOff = 1 << 7
	padInputOn   = 1 << 6
)

// rp1Bank hands out output lines on RP1 bank 0
type rp1Bank struct {
	mu   sync.Mutex
	regs *mmap.Region
}

func openRP1Bank(path string) (*rp1Bank, error) {
	regs, err := mmap.Map(path, 0, rp1MapSize)
	if err != nil {
		return nil, err
	}
	return &rp1Bank{regs: regs}, nil
}

// requester routes RP1Chip requests to the bank and everything else to next
func (b *rp1Bank) requester(next LineRequester) LineRequester {
	return func(chip string, offset int) (Line, error) {
		if chip != RP1Chip {
			return next(chip, offset)
		}
		return b.request(offset)
	}
}

func (b *rp1Bank) request(offset int) (Line, error) {
	if offset < 0 || offset >= rp1Pins {
		return nil, fmt.Errorf("RP1 bank 0 has no GPIO %d", offset)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	mask := uint32(1) << offset
	b.regs.Write32(rp1IOBank+8*offset+4, funcSelRIO)
	pad := rp1PadsBank + 4 + 4*offset
	b.regs.Write32(pad, b.regs.Read32(pad)&^padOutputOff|padInputOn)
	b.regs.Write32(rp1RIOBank+rioClear+rioOut, mask)
	b.regs.Write32(rp1RIOBank+rioSet+rioOE, mask)
	return &rp1Line{bank: b, mask: mask}, nil
}

func (b *rp1Bank) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.regs.Close()
}

type rp1Line struct {
	bank   *rp1Bank
	mask   uint32
	closed bool
}

// SetValue drives the line high for a non-zero value
func (l *rp1Line) SetValue(value int) error {
	if l.closed {
		return fmt.Errorf("GPIO line %#x is closed", l.mask)
	}
	reg := rp1RIOBank + rioClear + rioOut
	if value != 0 {
		reg = rp1RIOBank + rioSet + rioOut
	}
	l.bank.regs.Write32(reg, l.mask)
	return nil
}

// Close drives the line low and stops driving it
func (l *rp1Line) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.bank.regs.Write32(rp1RIOBank+rioClear+rioOut, l.mask)
	l.bank.regs.Write32(rp1RIOBank+rioClear+rioOE, l.mask)
	return nil
}
