package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadWave loads wave.yaml. Keys missing from the file keep their default values.
func (l *Loader) LoadWave() (*WaveConfig, error) {
	cfg := Default()
	if err := l.decode("wave.yaml", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wave.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadDisplay loads display.yaml
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	cfg := DefaultDisplay()
	if err := l.decode("display.yaml", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid display.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (display, wave)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	wave, err := l.LoadWave()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Wave:    wave,
	}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}
