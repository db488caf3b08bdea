package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// FromFile loads settings from the file at path. The format is picked by the
// file extension: .toml, .yaml/.yml or .json. Fields missing from the file
// keep their default values.
func FromFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}

	var s Settings

	switch ext := filepath.Ext(path); ext {
	case ".toml":
		err = toml.Unmarshal(data, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".json":
		err = json.Unmarshal(data, &s)
	default:
		return Settings{}, fmt.Errorf("settings: unsupported config format: %q", ext)
	}

	if err != nil {
		return Settings{}, fmt.Errorf("settings: parsing %s: %w", path, err)
	}

	return Fill(s), nil
}
