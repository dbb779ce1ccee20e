package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]ViewDefinition)
	registryMu sync.RWMutex
)

// Register adds a view definition to the registry.
// Panics if a view with the same key is already registered.
func Register(def ViewDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("view already registered: %s", def.Info.Key))
	}

	// Populate Columns from the column specs if not set
	if len(def.Info.Columns) == 0 && len(def.Columns) > 0 {
		def.Info.Columns = def.columnInfos()
	}

	registry[def.Info.Key] = def.clone()
}

// Get returns a view definition by key.
// Returns false if not found.
func Get(key string) (ViewDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	if !ok {
		return ViewDefinition{}, false
	}
	return def.clone(), true
}

// All returns all registered view definitions.
// Sorted by group then by key for consistent ordering.
func All() []ViewDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]ViewDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def.clone())
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Info.Group != result[j].Info.Group {
			return result[i].Info.Group < result[j].Info.Group
		}
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// ViewCount returns the number of registered views.
func ViewCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered views.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]ViewDefinition)
}
