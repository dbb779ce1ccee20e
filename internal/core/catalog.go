package core

// catalog.go loads optional per-deployment view overrides from YAML:
//
//	views:
//	  purchase_orders:
//	    label: Fleet Purchase Orders
//	    page_size: 25
//	    columns:
//	      title:
//	        label: Description
//	        filterable: true

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds view overrides keyed by view key.
type Catalog struct {
	Views map[string]ViewOverride `yaml:"views"`
}

// ViewOverride replaces display settings of a registered view.
// Zero fields keep the registered value.
type ViewOverride struct {
	Label             string                    `yaml:"label"`
	SearchPlaceholder string                    `yaml:"search_placeholder"`
	PageSize          int                       `yaml:"page_size"`
	Columns           map[string]ColumnOverride `yaml:"columns"`
}

// ColumnOverride replaces display settings of one column.
type ColumnOverride struct {
	Label      string `yaml:"label"`
	Filterable *bool  `yaml:"filterable"`
}

// LoadCatalog reads and validates a catalog file. An empty path yields an
// empty catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return &Catalog{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes catalog YAML and checks it against the registry.
// Unknown fields are rejected so typos do not silently do nothing.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every override names a registered view and column.
func (c *Catalog) Validate() error {
	for key, ov := range c.Views {
		def, ok := Get(key)
		if !ok {
			return fmt.Errorf("catalog: %w: %s", ErrViewNotFound, key)
		}
		if ov.PageSize < 0 {
			return fmt.Errorf("catalog: view %s: page_size must be positive", key)
		}
		for col := range ov.Columns {
			if !hasColumn(def, col) {
				return fmt.Errorf("catalog: view %s has no column %s", key, col)
			}
		}
	}
	return nil
}

// Apply returns def with the catalog's overrides for it.
func (c *Catalog) Apply(def ViewDefinition) ViewDefinition {
	if c == nil {
		return def
	}
	ov, ok := c.Views[def.Info.Key]
	if !ok {
		return def
	}

	def = def.clone()
	if ov.Label != "" {
		def.Info.Label = ov.Label
	}
	if ov.SearchPlaceholder != "" {
		def.Info.SearchPlaceholder = ov.SearchPlaceholder
	}
	if ov.PageSize > 0 {
		def.Info.DefaultPageSize = ov.PageSize
	}
	for i, col := range def.Columns {
		co, ok := ov.Columns[col.Key]
		if !ok {
			continue
		}
		if co.Label != "" {
			def.Columns[i].Label = co.Label
		}
		if co.Filterable != nil {
			def.Columns[i].Filterable = *co.Filterable
		}
	}
	def.Info.Columns = def.columnInfos()
	return def
}

func hasColumn(def ViewDefinition, key string) bool {
	for _, c := range def.Columns {
		if c.Key == key {
			return true
		}
	}
	return false
}
