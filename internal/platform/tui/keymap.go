package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkarpov/arcadium/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// gameBindings maps keys to the actions they trigger. Movement keys double
// as steering throttle so both linear and heading-based games work from the
// same bindings.
var gameBindings = map[string][]core.Action{
	"left":  {core.ActionLeft},
	"a":     {core.ActionLeft},
	"right": {core.ActionRight},
	"d":     {core.ActionRight},
	"up":    {core.ActionUp, core.ActionAccelerate},
	"w":     {core.ActionUp, core.ActionAccelerate},
	"down":  {core.ActionDown, core.ActionBrake},
	"s":     {core.ActionDown, core.ActionBrake},
	" ":     {core.ActionFire},
	"enter": {core.ActionConfirm},
	"p":     {core.ActionPause},
	"r":     {core.ActionRestart},
	"esc":   {core.ActionBack},
	"b":     {core.ActionBack},
}

// MapKeyToFrame records a key message into an input frame as press edges.
// Terminal input has no key-up events, so held movement relies on the
// terminal's key repeat; Press marks the action held for the coming tick.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return true
	}

	for _, action := range gameBindings[key] {
		frame.Press(action)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
