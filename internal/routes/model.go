package routes

import (
	"fmt"
	"strconv"
	"strings"
)

// Model is the validated, immutable route tree. Its declaration order is the
// reading order of the book.
type Model struct {
	entries []Entry
	flat    []FlatRoute
	index   map[string]int
}

// New validates entries and freezes them into a Model. Duplicate paths, paths
// without a leading slash, empty labels and grandchildren are rejected.
func New(entries []Entry) (*Model, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	m := &Model{
		entries: cloneEntries(entries),
		index:   make(map[string]int),
	}

	for i, e := range m.entries {
		ordinal := i + 1
		if err := m.add(e, ordinal, 0); err != nil {
			return nil, err
		}
		for j, child := range e.Children {
			if len(child.Children) > 0 {
				return nil, fmt.Errorf("%w: %q under %q", ErrTooDeep, child.Children[0].Path, child.Path)
			}
			if err := m.add(child, ordinal, j+1); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// MustNew is New for static route tables; it panics on a configuration error.
func MustNew(entries []Entry) *Model {
	m, err := New(entries)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Model) add(e Entry, ordinal, sub int) error {
	if !strings.HasPrefix(e.Path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, e.Path)
	}
	if strings.TrimSpace(e.Label) == "" {
		return fmt.Errorf("%w: %q", ErrEmptyLabel, e.Path)
	}
	if prev, ok := m.index[e.Path]; ok {
		return fmt.Errorf("%w: %q (already used by %q)", ErrDuplicatePath, e.Path, m.flat[prev].Label)
	}

	number := strconv.Itoa(ordinal)
	depth := 1
	if sub > 0 {
		number += "." + strconv.Itoa(sub)
		depth = 2
	}

	m.index[e.Path] = len(m.flat)
	m.flat = append(m.flat, FlatRoute{
		Path:       e.Path,
		Label:      e.Label,
		Page:       e.Page,
		Exact:      e.Exact,
		Ordinal:    ordinal,
		SubOrdinal: sub,
		Depth:      depth,
		Number:     number,
	})
	return nil
}

// Flatten returns the depth-first, order-preserving sequence of every entry.
func (m *Model) Flatten() []FlatRoute {
	out := make([]FlatRoute, len(m.flat))
	copy(out, m.flat)
	return out
}

// Entries returns a copy of the declared tree.
func (m *Model) Entries() []Entry {
	return cloneEntries(m.entries)
}

// Lookup finds the flattened route whose path equals path exactly.
func (m *Model) Lookup(path string) (FlatRoute, bool) {
	i, ok := m.index[path]
	if !ok {
		return FlatRoute{}, false
	}
	return m.flat[i], true
}

// Len returns the number of flattened routes.
func (m *Model) Len() int { return len(m.flat) }

func cloneEntries(in []Entry) []Entry {
	if in == nil {
		return nil
	}
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e
		out[i].Children = cloneEntries(e.Children)
	}
	return out
}
