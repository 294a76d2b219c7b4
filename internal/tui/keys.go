package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/hangtui/internal/nav"
)

type keyMap struct {
	NewGame     key.Binding
	Rules       key.Binding
	Menu        key.Binding
	Debug       key.Binding
	Quit        key.Binding
	Edit        key.Binding
	Submit      key.Binding
	StopEditing key.Binding
	Scroll      key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NewGame:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Rules:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rules")),
		Menu:        key.NewBinding(key.WithKeys("m", "esc"), key.WithHelp("m", "menu")),
		Debug:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "debug")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Edit:        key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "guess")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		StopEditing: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),
		Scroll:      key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// screenBinding ties a key to the intent it sends outside of text entry.
type screenBinding struct {
	binding key.Binding
	intent  nav.Intent
}

func (k keyMap) intentsFor(screen nav.Screen) []screenBinding {
	switch screen {
	case nav.MainMenu:
		return []screenBinding{
			{k.NewGame, nav.NewGame},
			{k.Rules, nav.ViewRules},
			{k.Debug, nav.ToggleDebug},
			{k.Quit, nav.Quit},
		}
	case nav.Rules:
		return []screenBinding{
			{k.Menu, nav.ReturnToMenu},
			{k.Quit, nav.Quit},
		}
	case nav.Playing:
		return []screenBinding{
			{k.NewGame, nav.NewGame},
			{k.Rules, nav.ViewRules},
			{k.Debug, nav.ToggleDebug},
			{k.Quit, nav.Quit},
		}
	case nav.RoundOver:
		return []screenBinding{
			{k.NewGame, nav.NewGame},
			{k.Menu, nav.ReturnToMenu},
			{k.Debug, nav.ToggleDebug},
			{k.Quit, nav.Quit},
		}
	}
	return nil
}

// helpKeys implements help.KeyMap for a fixed binding list.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding {
	return h
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

func (k keyMap) helpFor(screen nav.Screen, editing bool) helpKeys {
	if screen == nav.Playing && editing {
		return helpKeys{k.Submit, k.StopEditing}
	}
	var out helpKeys
	if screen == nav.Playing {
		out = append(out, k.Edit)
	}
	if screen == nav.Rules {
		out = append(out, k.Scroll)
	}
	for _, sb := range k.intentsFor(screen) {
		out = append(out, sb.binding)
	}
	return out
}
