package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	tab       key.Binding
	backtab   key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	refresh   key.Binding
	dismiss   key.Binding
	reset     key.Binding
	yes       key.Binding
	no        key.Binding
	invite    key.Binding
	edit      key.Binding
	resend    key.Binding
	remove    key.Binding
	flag      key.Binding
	expiry    key.Binding
	verify    key.Binding
	check     key.Binding
	security  key.Binding
	self      key.Binding
	breach    key.Binding
	report    key.Binding
	idOK      key.Binding
	idFail    key.Binding
	confirm   key.Binding
	dismissRv key.Binding
	dismissNt key.Binding
	alerts    key.Binding
	extra     key.Binding
	recover   key.Binding
	view      key.Binding
	compose   key.Binding
	requests  key.Binding
	votes     key.Binding
	complete  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	refresh:   key.NewBinding(key.WithKeys("ctrl+l")),
	dismiss:   key.NewBinding(key.WithKeys("x")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	invite:    key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	resend:    key.NewBinding(key.WithKeys("s")),
	remove:    key.NewBinding(key.WithKeys("ctrl+d")),
	flag:      key.NewBinding(key.WithKeys("f")),
	expiry:    key.NewBinding(key.WithKeys("E")),
	verify:    key.NewBinding(key.WithKeys("i")),
	check:     key.NewBinding(key.WithKeys("s")),
	security:  key.NewBinding(key.WithKeys("z")),
	self:      key.NewBinding(key.WithKeys("p")),
	breach:    key.NewBinding(key.WithKeys("b")),
	report:    key.NewBinding(key.WithKeys("u")),
	idOK:      key.NewBinding(key.WithKeys("i")),
	idFail:    key.NewBinding(key.WithKeys("I")),
	confirm:   key.NewBinding(key.WithKeys("c")),
	dismissRv: key.NewBinding(key.WithKeys("d")),
	dismissNt: key.NewBinding(key.WithKeys("D")),
	alerts:    key.NewBinding(key.WithKeys("a")),
	extra:     key.NewBinding(key.WithKeys("m")),
	recover:   key.NewBinding(key.WithKeys("g")),
	view:      key.NewBinding(key.WithKeys("w")),
	compose:   key.NewBinding(key.WithKeys("o")),
	requests:  key.NewBinding(key.WithKeys("R")),
	votes:     key.NewBinding(key.WithKeys("t")),
	complete:  key.NewBinding(key.WithKeys("F")),
}
