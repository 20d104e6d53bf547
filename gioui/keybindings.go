package gioui

import (
	"bytes"
	_ "embed"
	"fmt"

	"gioui.org/io/key"
	"gopkg.in/yaml.v3"

	"github.com/wavedraw/wavedraw/editor"
)

type KeyBinding struct {
	Key                                        string
	Shortcut, Ctrl, Command, Shift, Alt, Super bool
	Action                                     string
}

var keyBindingMap = map[key.Event]string{}

//go:embed keybindings.yml
var defaultKeyBindings []byte

func init() {
	var keyBindings, userKeybindings []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(defaultKeyBindings))
	dec.KnownFields(true)
	if err := dec.Decode(&keyBindings); err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	if exists, err := editor.ReadCustomConfigYml("keybindings.yml", &userKeybindings); exists && err == nil {
		keyBindings = append(keyBindings, userKeybindings...)
	}

	for _, kb := range keyBindings {
		var mods key.Modifiers
		if kb.Shortcut {
			mods |= key.ModShortcut
		}
		if kb.Ctrl {
			mods |= key.ModCtrl
		}
		if kb.Command {
			mods |= key.ModCommand
		}
		if kb.Shift {
			mods |= key.ModShift
		}
		if kb.Alt {
			mods |= key.ModAlt
		}
		if kb.Super {
			mods |= key.ModSuper
		}

		keyEvent := key.Event{Name: key.Name(kb.Key), Modifiers: mods, State: key.Press}
		if kb.Action == "" { // unbind
			delete(keyBindingMap, keyEvent)
		} else {
			keyBindingMap[keyEvent] = kb.Action
		}
	}
}
