package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Default returns the built-in dataset.
func Default() (*SeedConfig, error) {
	cfg := &SeedConfig{}
	if err := decode(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse built-in dataset: %w", err)
	}
	return cfg, nil
}

// Load returns the built-in dataset with the file at path decoded on top
// of it. Sections the file names replace the defaults field by field;
// sections it omits keep their defaults. An empty path yields the defaults.
func Load(path string) (*SeedConfig, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	if err := decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *SeedConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
