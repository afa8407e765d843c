package present

import "sort"

// Action is a navigation command derived from a key press.
type Action int

const (
	Ignore Action = iota
	Next
	Previous
	Quit
)

func (a Action) String() string {
	switch a {
	case Ignore:
		return "Ignore"
	case Next:
		return "Next"
	case Previous:
		return "Previous"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Keymap maps key strings (tea.KeyMsg.String() format) to actions.
type Keymap map[string]Action

// DefaultKeymap binds l/h to Next/Previous and q to Quit. ctrl+c also quits
// because raw mode delivers it as a key instead of a signal.
func DefaultKeymap() Keymap {
	return Keymap{
		"l":      Next,
		"h":      Previous,
		"q":      Quit,
		"ctrl+c": Quit,
	}
}

// Lookup returns the action bound to key, or Ignore if none is.
func (k Keymap) Lookup(key string) Action {
	if a, ok := k[key]; ok {
		return a
	}
	return Ignore
}

// Binding pairs a key with its action.
type Binding struct {
	Key    string
	Action Action
}

// Bindings returns all non-Ignore bindings ordered by action, then key.
func (k Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k))
	for key, a := range k {
		if a == Ignore {
			continue
		}
		out = append(out, Binding{Key: key, Action: a})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Key < out[j].Key
	})
	return out
}
