package room

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	next       key.Binding
	previous   key.Binding
	skip       key.Binding
	flag       key.Binding
	repeat     key.Binding
	mute       key.Binding
	camera     key.Binding
	notes      key.Binding
	doneNotes  key.Binding
	retry      key.Binding
	leave      key.Binding
	help       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	next: key.NewBinding(
		key.WithKeys("right", "l", "enter"),
		key.WithHelp("→", "next question"),
	),
	previous: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	flag: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "flag for review"),
	),
	repeat: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "repeat question"),
	),
	mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute"),
	),
	camera: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "camera"),
	),
	notes: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "notes"),
	),
	doneNotes: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "save notes"),
	),
	retry: key.NewBinding(
		key.WithKeys("r", "enter"),
		key.WithHelp("r", "try again"),
	),
	leave: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q", "end interview"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.next, k.flag, k.leave, k.help}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.next, k.previous, k.skip},
		{k.flag, k.repeat, k.notes},
		{k.mute, k.camera},
		{k.leave, k.quit, k.help},
	}
}
