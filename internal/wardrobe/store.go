package wardrobe

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Store persists a wardrobe collection to a single local file. The format is
// chosen by extension: .yaml/.yml files use YAML, everything else JSON.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the wardrobe file. A missing or empty file yields an empty
// collection so a fresh setup can start adding items right away.
func (s *Store) Load() (*Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Collection{}, nil
		}
		return nil, fmt.Errorf("reading wardrobe file %q: %w", s.path, err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return &Collection{}, nil
	}

	var raw map[string]any
	if s.yamlFormat() {
		err = yaml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing wardrobe file %q: %w", s.path, err)
	}

	// Both formats funnel through one decoder keyed on the json tags, so
	// the file shape stays identical regardless of extension.
	var collection Collection
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &collection,
		TagName:  "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("parsing wardrobe file %q: %w", s.path, err)
	}

	for idx, item := range collection.Items {
		if err := CheckItem(item); err != nil {
			return nil, fmt.Errorf("wardrobe file %q: item %d: %w", s.path, idx, err)
		}
	}

	return &collection, nil
}

func (s *Store) Save(c *Collection) error {
	var (
		data []byte
		err  error
	)
	if s.yamlFormat() {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding wardrobe: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing wardrobe file %q: %w", s.path, err)
	}
	return nil
}

func (s *Store) yamlFormat() bool {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// CheckItem validates a single wardrobe record: required fields via struct
// tags, then the category against the closed set. The canonical category
// spelling is written back so lookups stay case-stable.
func CheckItem(item *Item) error {
	if err := validate.Struct(item); err != nil {
		return fmt.Errorf("invalid item: %w", err)
	}

	cat, err := ParseCategory(string(item.Category))
	if err != nil {
		return err
	}
	item.Category = cat

	return nil
}
