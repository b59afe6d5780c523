package checkup

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Yes     key.Binding
	No      key.Binding
	Skip    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "No"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Skip rest"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "tab", "h", "l"),
			key.WithHelp("←→", "Choose"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Answer"),
		),
	}
}
