package table

import "slices"

// FacetRegistry remembers the distinct values seen for each filterable
// column across every record set it has observed. A column's value set only
// grows; a value observed once stays available even after the data that
// contained it is replaced.
type FacetRegistry struct {
	values map[string][]string       // column key -> sorted labels
	raw    map[string]map[string][]any // column key -> label -> raw values with that label
}

// NewFacetRegistry returns an empty registry.
func NewFacetRegistry() *FacetRegistry {
	return &FacetRegistry{
		values: make(map[string][]string),
		raw:    make(map[string]map[string][]any),
	}
}

// Observe merges the distinct non-null values of records into the registry
// for every filterable column. Empty strings carry no selectable meaning and
// are skipped. Values of different kinds that print alike (5 and "5") share
// one label, and the label keeps every raw value behind it.
func (f *FacetRegistry) Observe(records []Record, columns []Column) {
	for _, col := range columns {
		if !col.IsFilterable() {
			continue
		}

		known := f.raw[col.Key]
		if known == nil {
			known = make(map[string][]any)
			f.raw[col.Key] = known
		}

		added := false
		for _, rec := range records {
			v := rec.Value(col.Key)
			if isNull(v) {
				continue
			}
			label := stringOf(v)
			if label == "" {
				continue
			}
			raws, ok := known[label]
			if !ok {
				f.values[col.Key] = append(f.values[col.Key], label)
				added = true
			}
			if !slices.Contains(raws, v) {
				known[label] = append(raws, v)
			}
		}

		if added {
			slices.Sort(f.values[col.Key])
		} else if _, ok := f.values[col.Key]; !ok {
			f.values[col.Key] = []string{}
		}
	}
}

// Values returns the sorted labels known for column. The slice is a copy.
func (f *FacetRegistry) Values(column string) []string {
	return slices.Clone(f.values[column])
}

// Has reports whether column has a facet entry, even an empty one.
func (f *FacetRegistry) Has(column string) bool {
	_, ok := f.values[column]
	return ok
}

// RawValues maps a label back to the raw values it was observed as, in
// first-seen order. The slice is a copy.
func (f *FacetRegistry) RawValues(column, label string) ([]any, bool) {
	raws, ok := f.raw[column][label]
	return slices.Clone(raws), ok
}
