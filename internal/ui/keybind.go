package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"

	"deckterm/internal/present"
)

// actionHelp is the short description shown for each action in the footer.
var actionHelp = map[present.Action]string{
	present.Next:     "next",
	present.Previous: "prev",
	present.Quit:     "quit",
}

// KeyMap implements help.KeyMap for a present.Keymap.
// Each action gets one key.Binding holding every key bound to it; the
// shortest key is the one displayed.
type KeyMap struct {
	bindings []key.Binding
}

// NewKeyMap builds help bindings from keys, ordered Next, Previous, Quit.
func NewKeyMap(keys present.Keymap) KeyMap {
	byAction := make(map[present.Action][]string)
	for _, b := range keys.Bindings() {
		byAction[b.Action] = append(byAction[b.Action], b.Key)
	}

	actions := make([]present.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	km := KeyMap{}
	for _, a := range actions {
		ks := byAction[a]
		sort.SliceStable(ks, func(i, j int) bool { return len(ks[i]) < len(ks[j]) })
		km.bindings = append(km.bindings, key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(ks[0], actionHelp[a]),
		))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return km.bindings
}

// FullHelp implements help.KeyMap with a single column.
func (km KeyMap) FullHelp() [][]key.Binding {
	if len(km.bindings) == 0 {
		return nil
	}
	return [][]key.Binding{km.bindings}
}
