// Package config loads the `lint --config FILE` document (§6), selecting a
// JSON or TOML decoder by file extension and rejecting unrecognized fields
// so a typo in a config file fails loudly instead of being silently ignored.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/oxhq/webcst/internal/model"
)

// Load reads path and decodes it into a model.Config, selecting the decoder
// by extension (".json" or ".toml"). Any field not present in model.Config
// is a load error.
func Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.Wrap(model.ErrIO, "reading config file", err)
	}

	var cfg model.Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = decodeJSON(data, &cfg)
	case ".toml":
		err = decodeTOML(data, &cfg)
	default:
		return nil, model.CLIError{
			Code:    model.ErrInvalidConfig,
			Message: "unsupported config extension",
			Detail:  fmt.Sprintf("%q (expected .json or .toml)", ext),
		}
	}
	if err != nil {
		return nil, model.Wrap(model.ErrInvalidConfig, "decoding config file", err)
	}
	return &cfg, nil
}

func decodeJSON(data []byte, cfg *model.Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func decodeTOML(data []byte, cfg *model.Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
