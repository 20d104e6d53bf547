package editor

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Editing  EditingPreferences
		Window   WindowPreferences
		YmlError error `yaml:"-"`
	}

	EditingPreferences struct {
		// HitTolerance is how many pixels the pointer may be away from the
		// rendered sample, vertically, and still grab it.
		HitTolerance int `yaml:"hittolerance"`
		// LockRedrawsFromClick selects what the horizontal lock modifier
		// anchors to: true re-paints every locked drag segment from the
		// original click column; false freezes the horizontal position so a
		// locked drag only moves the clicked sample vertically.
		LockRedrawsFromClick bool `yaml:"lockredrawsfromclick"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, "wavedraw", filename)
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.Unmarshal(bytes, target)
	return true, err
}

func MakePreferences() Preferences {
	preferences := loadDefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}
