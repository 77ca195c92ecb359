package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/flowshape/syntaxdiagrams/pkg/diagram"
	"github.com/flowshape/syntaxdiagrams/pkg/load"
)

// loadDiagramFile reads path and decodes it as either JSON or TOML
// (selected by extension, defaulting to JSON), then turns the decoded
// data literal into a diagram tree via [load.Load].
func loadDiagramFile(path string) (diagram.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &v); err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
	}

	return load.Load(v)
}
