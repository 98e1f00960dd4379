package stories

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Import validation errors.
var (
	ErrMissingID         = errors.New("story has no id")
	ErrMissingContent    = errors.New("story has no content")
	ErrDuplicateID       = errors.New("duplicate story id")
	ErrUnsupportedFormat = errors.New("unsupported story file format")
)

// record is the on-disk shape of a story in YAML and TOML files.
type record struct {
	ID       string    `yaml:"id" koanf:"id"`
	Author   string    `yaml:"author" koanf:"author"`
	Content  string    `yaml:"content" koanf:"content"`
	Variant  string    `yaml:"variant" koanf:"variant"`
	PostedAt time.Time `yaml:"posted_at" koanf:"posted_at"`
}

type document struct {
	Stories []record `yaml:"stories" koanf:"stories"`
}

// ImportFile reads and validates a story file. The format is chosen by
// extension: .yaml/.yml or .toml.
func ImportFile(path string) ([]Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseYAML parses a YAML story document.
func ParseYAML(data []byte) ([]Story, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return fromRecords(doc.Stories)
}

// ParseTOML parses a TOML story document.
func ParseTOML(data []byte) ([]Story, error) {
	k := koanf.New(".")
	if err := k.Load(rawBytes(data), toml.Parser()); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return fromRecords(doc.Stories)
}

func fromRecords(records []record) ([]Story, error) {
	seen := make(map[string]bool, len(records))
	result := make([]Story, 0, len(records))
	for i, r := range records {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return nil, fmt.Errorf("story %d: %w", i+1, ErrMissingID)
		}
		if strings.TrimSpace(r.Content) == "" {
			return nil, fmt.Errorf("story %q: %w", id, ErrMissingContent)
		}
		if seen[id] {
			return nil, fmt.Errorf("story %q: %w", id, ErrDuplicateID)
		}
		seen[id] = true

		result = append(result, Story{
			StoryID:  id,
			Author:   strings.TrimSpace(r.Author),
			Content:  r.Content,
			Kind:     NormalizeVariant(r.Variant),
			PostedAt: r.PostedAt,
		})
	}
	return result, nil
}

// FileSource loads stories straight from a story file.
type FileSource struct {
	Path string
}

// Load implements Source.
func (f FileSource) Load() ([]Story, error) {
	return ImportFile(f.Path)
}

// rawBytes is a koanf provider over an in-memory document.
type rawBytes []byte

func (b rawBytes) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b rawBytes) Read() (map[string]any, error) {
	return nil, errors.New("rawBytes provider does not support Read")
}
