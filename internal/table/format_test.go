package table

import (
	"testing"
	"time"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		col  Column
		rec  Record
		want string
	}{
		{"text", Column{Key: "v", Type: TypeText}, Record{"v": "Ballast pump"}, "Ballast pump"},
		{"text null", Column{Key: "v", Type: TypeText}, Record{}, "-"},
		{"text empty", Column{Key: "v", Type: TypeText}, Record{"v": ""}, "-"},
		{"status", Column{Key: "v", Type: TypeStatus}, Record{"v": "ISSUED"}, "ISSUED"},
		{"status null", Column{Key: "v", Type: TypeStatus}, Record{"v": nil}, "N/A"},
		{"priority", Column{Key: "v", Type: TypePriority}, Record{"v": "A"}, "A"},
		{"number grouped", Column{Key: "v", Type: TypeNumber}, Record{"v": 1234567}, "1,234,567"},
		{"number null", Column{Key: "v", Type: TypeNumber}, Record{}, "0"},
		{"currency", Column{Key: "v", Type: TypeCurrency}, Record{"v": 1234.5}, "$1,234.50"},
		{"currency null", Column{Key: "v", Type: TypeCurrency}, Record{"v": nil}, "$0.00"},
		{"currency string", Column{Key: "v", Type: TypeCurrency}, Record{"v": "99.999"}, "$100.00"},
		{"date", Column{Key: "v", Type: TypeDate}, Record{"v": time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}, "3/5/2024"},
		{"date string", Column{Key: "v", Type: TypeDate}, Record{"v": "2024-11-20"}, "11/20/2024"},
		{"date null", Column{Key: "v", Type: TypeDate}, Record{}, "N/A"},
		{"date unparseable", Column{Key: "v", Type: TypeDate}, Record{"v": "soon"}, "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.col, tt.rec); got != tt.want {
				t.Errorf("FormatCell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCell_RenderOverrides(t *testing.T) {
	col := Column{
		Key:  "po",
		Type: TypeText,
		Render: func(v any, rec Record) string {
			return "PO " + v.(string) + " / " + rec["ship"].(string)
		},
	}

	got := FormatCell(col, Record{"po": "1001", "ship": "Aurora"})
	if got != "PO 1001 / Aurora" {
		t.Errorf("FormatCell() = %q, want %q", got, "PO 1001 / Aurora")
	}
}

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	ts := time.Date(2024, 1, 1, 1, 0, 0, 0, loc)

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"int", 5, 5.0},
		{"int64", int64(7), 7.0},
		{"uint8", uint8(3), 3.0},
		{"float32", float32(1.5), 1.5},
		{"string", "5", "5"},
		{"bytes", []byte("abc"), "abc"},
		{"time to UTC", ts, ts.UTC()},
		{"zero time", time.Time{}, nil},
		{"nil pointer", (*string)(nil), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColumnType(t *testing.T) {
	for ct, name := range columnTypeNames {
		got, err := ParseColumnType(name)
		if err != nil {
			t.Errorf("ParseColumnType(%q) error = %v", name, err)
		}
		if got != ct {
			t.Errorf("ParseColumnType(%q) = %v, want %v", name, got, ct)
		}
	}

	if _, err := ParseColumnType("money"); err == nil {
		t.Error("ParseColumnType(money) expected error")
	}
}
