package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/scenegraph/internal/core/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension; unknown extensions are JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadJSON loads node info from a JSON reader.
func LoadJSON(r io.Reader) (*models.Info, error) {
	var info models.Info
	if err := json.NewDecoder(r).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// LoadYAML loads node info from a YAML reader.
func LoadYAML(r io.Reader) (*models.Info, error) {
	var info models.Info
	if err := yaml.NewDecoder(r).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// LoadFile reads node info from path, choosing the decoder by extension.
func LoadFile(path string) (*models.Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var info *models.Info
	switch FormatFromPath(path) {
	case FormatYAML:
		info, err = LoadYAML(f)
	default:
		info, err = LoadJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return info, nil
}

// Encode writes info to w in the given format.
func Encode(w io.Writer, info *models.Info, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
