package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCatalog(t *testing.T) {
	testViews(t)

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "empty document", yaml: ""},
		{
			name: "valid overrides",
			yaml: `
views:
  orders:
    label: Fleet Orders
    page_size: 50
    columns:
      number:
        label: PO #
        filterable: true
`,
		},
		{
			name:    "unknown view",
			yaml:    "views:\n  invoices:\n    label: Invoices\n",
			wantErr: "view not found",
		},
		{
			name:    "unknown column",
			yaml:    "views:\n  orders:\n    columns:\n      amount:\n        label: Amount\n",
			wantErr: "has no column amount",
		},
		{
			name:    "negative page size",
			yaml:    "views:\n  orders:\n    page_size: -5\n",
			wantErr: "page_size must be positive",
		},
		{
			name:    "misspelled field",
			yaml:    "views:\n  orders:\n    lable: Orders\n",
			wantErr: "parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseCatalog_UnknownViewWrapsSentinel(t *testing.T) {
	testViews(t)

	_, err := ParseCatalog([]byte("views:\n  invoices: {}\n"))
	if !errors.Is(err, ErrViewNotFound) {
		t.Errorf("expected ErrViewNotFound, got %v", err)
	}
}

func TestLoadCatalog(t *testing.T) {
	testViews(t)

	t.Run("empty path", func(t *testing.T) {
		c, err := LoadCatalog("")
		if err != nil || c == nil || len(c.Views) != 0 {
			t.Errorf("LoadCatalog(\"\") = %v, %v", c, err)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "views.yaml")
		if err := os.WriteFile(path, []byte("views:\n  orders:\n    label: From File\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		c, err := LoadCatalog(path)
		if err != nil {
			t.Fatalf("LoadCatalog() error: %v", err)
		}
		if c.Views["orders"].Label != "From File" {
			t.Errorf("label = %q", c.Views["orders"].Label)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestCatalog_Apply(t *testing.T) {
	testViews(t)

	c, err := ParseCatalog([]byte(`
views:
  orders:
    label: Fleet Orders
    search_placeholder: Search orders...
    page_size: 100
    columns:
      number:
        label: PO #
        filterable: true
      ship_name:
        filterable: false
`))
	if err != nil {
		t.Fatalf("ParseCatalog() error: %v", err)
	}

	def, _ := Get("orders")
	got := c.Apply(def)

	if got.Info.Label != "Fleet Orders" || got.Info.SearchPlaceholder != "Search orders..." {
		t.Errorf("info = %+v", got.Info)
	}
	if got.Info.DefaultPageSize != 100 {
		t.Errorf("page size = %d, want 100", got.Info.DefaultPageSize)
	}
	if got.Columns[0].Label != "PO #" || !got.Columns[0].IsFilterable() {
		t.Errorf("number column = %+v", got.Columns[0])
	}
	if got.Columns[2].IsFilterable() {
		t.Error("ship_name should no longer be filterable")
	}
	if !got.Info.Columns[0].Filterable || got.Info.Columns[0].Label != "PO #" {
		t.Errorf("column info not refreshed: %+v", got.Info.Columns[0])
	}

	// The registry keeps its own copy.
	orig, _ := Get("orders")
	if orig.Columns[0].Label != "Number" {
		t.Error("Apply modified the registered definition")
	}

	// Views without overrides and nil catalogs pass through.
	req, _ := Get("requests")
	if c.Apply(req).Info.Label != "Requests" {
		t.Error("unrelated view changed")
	}
	var nilCatalog *Catalog
	if nilCatalog.Apply(def).Info.Label != "Orders" {
		t.Error("nil catalog changed the view")
	}
}
