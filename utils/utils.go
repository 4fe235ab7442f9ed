package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// ArrayContains returns the index of the first element matching the predicate
func ArrayContains[T any](set []T, match func(elem T) bool) (int, bool) {
	for idx, elem := range set {
		if match(elem) {
			return idx, true
		}
	}

	return -1, false
}

func IsValidSubcommand(available []*cobra.Command, cmd string) bool {
	for _, s := range available {
		if cmd == s.CalledAs() || cmd == s.Name() || cmd == "help" || cmd == "-h" || cmd == "--help" {
			return true
		}
		for _, alias := range s.Aliases {
			if cmd == alias {
				return true
			}
		}
	}

	return false
}

// UnmarshalFile reads a json or yaml file into dest; yaml is detected by extension.
func UnmarshalFile(file string, dest any) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read file[%s]: %s", file, err)
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return fmt.Errorf("failed to convert yaml file[%s]: %s", file, err)
		}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal file[%s]: %s", file, err)
	}

	return nil
}

// WriteFile marshals data as indented json into file, creating parent directories.
func WriteFile(file string, data any) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for file[%s]: %s", file, err)
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data for file[%s]: %s", file, err)
	}

	return os.WriteFile(file, b, 0o600)
}
