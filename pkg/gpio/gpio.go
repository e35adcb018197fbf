// Package gpio drives output pins through the legacy sysfs GPIO interface,
// for kernels without the GPIO character device.
package gpio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"
)

// DefaultRoot is where the kernel exposes sysfs GPIO
const DefaultRoot = "/sys/class/gpio"

// exportWait bounds how long the kernel may take to create an exported pin
const exportWait = time.Second

// Pin is an exported sysfs GPIO pin configured as an output. The value file
// stays open for the life of the pin.
type Pin struct {
	root   string
	number int

	mu    sync.Mutex
	value *os.File
}

// NewPin exports pin number under DefaultRoot
func NewPin(number int) (*Pin, error) {
	return Open(DefaultRoot, number)
}

// Open exports pin number under root and sets it as an output driven low
func Open(root string, number int) (*Pin, error) {
	p := &Pin{root: root, number: number}

	if err := p.writeFile("export", strconv.Itoa(number)); err != nil && !errors.Is(err, syscall.EBUSY) {
		return nil, fmt.Errorf("failed to export pin %d: %w", number, err)
	}
	if err := p.waitExported(); err != nil {
		return nil, err
	}
	if err := p.writeFile(p.pinFile("direction"), "low"); err != nil {
		return nil, fmt.Errorf("failed to set pin %d direction: %w", number, err)
	}

	f, err := os.OpenFile(filepath.Join(root, p.pinFile("value")), os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open pin %d value: %w", number, err)
	}
	p.value = f
	return p, nil
}

func (p *Pin) pinFile(name string) string {
	return filepath.Join(fmt.Sprintf("gpio%d", p.number), name)
}

func (p *Pin) writeFile(name, data string) error {
	f, err := os.OpenFile(filepath.Join(p.root, name), os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(data)
	return err
}

// waitExported polls for the pin directory the kernel creates on export
func (p *Pin) waitExported() error {
	deadline := time.Now().Add(exportWait)
	path := filepath.Join(p.root, p.pinFile("direction"))
	for {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("pin %d was not exported within %v", p.number, exportWait)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Number returns the pin's GPIO number
func (p *Pin) Number() int {
	return p.number
}

// SetValue drives the pin low for 0 and high otherwise
func (p *Pin) SetValue(value int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.value == nil {
		return fmt.Errorf("pin %d is closed", p.number)
	}
	v := "0"
	if value != 0 {
		v = "1"
	}
	if _, err := p.value.WriteAt([]byte(v), 0); err != nil {
		return fmt.Errorf("failed to write pin %d: %w", p.number, err)
	}
	return nil
}

// Value reads the pin's current level
func (p *Pin) Value() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.value == nil {
		return 0, fmt.Errorf("pin %d is closed", p.number)
	}
	buf := make([]byte, 2)
	n, err := p.value.ReadAt(buf, 0)
	if n == 0 && err != nil {
		return 0, fmt.Errorf("failed to read pin %d: %w", p.number, err)
	}
	return strconv.Atoi(strings.TrimSpace(string(buf[:n])))
}

// Close releases the value file and unexports the pin
func (p *Pin) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.value == nil {
		return nil
	}
	err := p.value.Close()
	p.value = nil
	if uerr := p.writeFile("unexport", strconv.Itoa(p.number)); uerr != nil && err == nil {
		err = fmt.Errorf("failed to unexport pin %d: %w", p.number, uerr)
	}
	return err
}
