package sanitize

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// categoryFile is the on-disk schema for custom contact categories.
type categoryFile struct {
	Categories []Category `yaml:"categories"`
}

// LoadCategories reads extra contact-marker categories from a YAML file, for
// deployments that need the filter to learn new leak shapes without a code
// change. Entries without keywords are skipped with a warning rather than
// failing the whole file.
func LoadCategories(path string, logger *slog.Logger) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse categories file %s: %w", path, err)
	}

	out := make([]Category, 0, len(file.Categories))
	for _, cat := range file.Categories {
		if len(cat.Keywords) == 0 {
			logger.Warn("skipping category without keywords", "name", cat.Name, "path", path)
			continue
		}
		out = append(out, cat)
	}
	return out, nil
}
