package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the dashboard bindings. The help card is rendered from
// these so it never drifts from the actual dispatch.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Pane     key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	JumpWeek key.Binding
	AddGoal  key.Binding
	Log      key.Binding
	Quick    key.Binding
	Edit     key.Binding
	DelSess  key.Binding
	DelGoal  key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j k", "Move within pane")),
	Down:     key.NewBinding(key.WithKeys("j", "down")),
	Pane:     key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab", "Switch pane")),
	PrevWeek: key.NewBinding(key.WithKeys("["), key.WithHelp("[ ]", "Previous / next week")),
	NextWeek: key.NewBinding(key.WithKeys("]")),
	JumpWeek: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Jump to a specific week")),
	AddGoal:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add a goal")),
	Log:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "Log a session")),
	Quick:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "Quick add 1 unit to highlighted goal")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit highlighted session amount")),
	DelSess:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Delete highlighted session")),
	DelGoal:  key.NewBinding(key.WithKeys("D", "x"), key.WithHelp("D", "Delete highlighted goal (cascades)")),
	Clear:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "Clear all goals and sessions")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
}

// helpBindings lists the bindings shown on the help card, in order.
var helpBindings = []key.Binding{
	keys.Up, keys.Pane, keys.PrevWeek, keys.JumpWeek,
	keys.AddGoal, keys.Log, keys.Quick,
	keys.Edit, keys.DelSess, keys.DelGoal, keys.Clear,
	keys.Help, keys.Quit,
}
