package dashboard

import "fmt"

// identified is any entity addressable by id.
type identified interface {
	GetID() string
}

// appendItem returns a new slice with item appended; items is left intact.
func appendItem[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// findItem returns the entity with the given id.
func findItem[T identified](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// updateItem maps items, replacing the entity with the given id by fn(entity).
// Other entities pass through unchanged.
func updateItem[T identified](items []T, id string, fn func(T) T) ([]T, T, error) {
	out := make([]T, len(items))
	var (
		updated T
		found   bool
	)
	for i, it := range items {
		if it.GetID() == id && !found {
			it = fn(it)
			updated = it
			found = true
		}
		out[i] = it
	}
	if !found {
		return items, updated, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return out, updated, nil
}

// removeItem returns items without the entity with the given id.
func removeItem[T identified](items []T, id string) ([]T, error) {
	out := make([]T, 0, len(items))
	found := false
	for _, it := range items {
		if it.GetID() == id && !found {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		return items, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return out, nil
}
