package input

import (
	"testing"

	"github.com/eiannone/keyboard"
)

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		char rune
		key  keyboard.Key
		want bool
	}{
		{name: "q", char: 'q', want: true},
		{name: "Q", char: 'Q', want: true},
		{name: "escape", key: keyboard.KeyEsc, want: true},
		{name: "ctrl-c", key: keyboard.KeyCtrlC, want: true},
		{name: "space", key: keyboard.KeySpace},
		{name: "letter", char: 'x'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsQuit(tt.char, tt.key); got != tt.want {
				t.Errorf("IsQuit(%q, %v) = %v, want %v", tt.char, tt.key, got, tt.want)
			}
		})
	}
}
