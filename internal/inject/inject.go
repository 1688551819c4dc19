// Package inject delivers transcribed text to the active application
// through the clipboard and synthetic keystrokes (robotgo).
package inject

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Injector writes text to the clipboard and optionally pastes or types
// it into the focused control.
type Injector struct {
	method    string // "paste" or "type"
	sendEnter bool
}

// NewInjector creates an Injector. method must be "paste" (clipboard +
// Cmd+V) or "type" (keystroke simulation); sendEnter taps Enter after a
// successful delivery.
func NewInjector(method string, sendEnter bool) *Injector {
	return &Injector{method: method, sendEnter: sendEnter}
}

// Copy places text on the clipboard without pasting. Used when the
// focus policy forbids a direct paste.
func (inj *Injector) Copy(text string) error {
	if err := robotgo.WriteAll(text); err != nil {
		return fmt.Errorf("inject: write to clipboard: %w", err)
	}
	return nil
}

// Deliver sends text to the focused control using the configured method.
// The text stays on the clipboard afterwards so the user can re-paste it
// if it landed wrong.
func (inj *Injector) Deliver(text string) error {
	if text == "" {
		return nil
	}

	switch inj.method {
	case "type":
		if err := inj.Copy(text); err != nil {
			return err
		}
		robotgo.Type(text)
	default: // "paste"
		if err := inj.Copy(text); err != nil {
			return err
		}
		if err := robotgo.KeyTap("v", "cmd"); err != nil {
			return fmt.Errorf("inject: key tap cmd+v: %w", err)
		}
	}

	if inj.sendEnter {
		if err := robotgo.KeyTap("enter"); err != nil {
			return fmt.Errorf("inject: key tap enter: %w", err)
		}
	}

	return nil
}
