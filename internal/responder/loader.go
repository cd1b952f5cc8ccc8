package responder

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no faq entries and no orders")
	ErrDuplicateOrder = errors.New("duplicate order id")
	ErrInvalidFAQ     = errors.New("invalid faq entry")
	ErrInvalidOrder   = errors.New("invalid order")
)

// LoadCatalog reads a YAML catalog. An empty path returns DefaultCatalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func (c Catalog) validate() error {
	if len(c.FAQ) == 0 && len(c.Orders) == 0 {
		return ErrEmptyCatalog
	}
	for i, f := range c.FAQ {
		if strings.TrimSpace(f.Answer) == "" {
			return fmt.Errorf("%w: entry %d (%s) has no answer", ErrInvalidFAQ, i, f.Topic)
		}
		if len(f.Keywords) == 0 {
			return fmt.Errorf("%w: entry %d (%s) has no keywords", ErrInvalidFAQ, i, f.Topic)
		}
		// A blank keyword would match every query.
		for _, kw := range f.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("%w: entry %d (%s) has a blank keyword", ErrInvalidFAQ, i, f.Topic)
			}
		}
	}

	seen := make(map[string]bool, len(c.Orders))
	for i, o := range c.Orders {
		if strings.TrimSpace(o.ID) == "" {
			return fmt.Errorf("%w: order %d has no id", ErrInvalidOrder, i)
		}
		id := strings.ToUpper(o.ID)
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, o.ID)
		}
		seen[id] = true
	}
	return nil
}
