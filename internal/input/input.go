// Package input watches the keyboard for a request to quit
package input

import (
	"context"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
)

// IsQuit reports whether a key press asks to quit: q, Esc or Ctrl-C.
// Ctrl-C arrives as a key because the terminal is in raw mode.
func IsQuit(char rune, key keyboard.Key) bool {
	switch {
	case char == 'q' || char == 'Q':
		return true
	case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC:
		return true
	}
	return false
}

// Interactive reports whether stdin is a terminal
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WatchQuit calls cancel when a quit key is pressed or ctx ends. It does
// nothing when stdin is not a terminal.
func WatchQuit(ctx context.Context, cancel context.CancelFunc, log logr.Logger) error {
	if !Interactive() {
		return nil
	}

	keys, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}

	go func() {
		defer keyboard.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-keys:
				if !ok {
					return
				}
				if ev.Err != nil {
					log.Error(ev.Err, "failed to read key")
					return
				}
				if IsQuit(ev.Rune, ev.Key) {
					log.V(1).Info("quit requested")
					cancel()
					return
				}
			}
		}
	}()
	return nil
}
