package tui

// Key bindings, as reported by tea.KeyMsg.String().
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keySlash  = "/"
	keyBack   = "backspace"
	keyLeft   = "left"
	keyRight  = "right"
	keyH      = "h"
	keyL      = "l"
	keyTitle  = "t"
	keyPrice  = "p"
	keyResize = "z"
)

// helpText is shown in the status bar of the list view.
const helpText = "'/' search  't' title  'p' price  '←/→' page  'z' size  'enter' detail  'q' quit"
