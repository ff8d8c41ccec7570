package routes

import (
	"errors"
	"fmt"
)

// Entry is one node of the navigation tree: a chapter, or a section nested one
// level under a chapter.
type Entry struct {
	Path     string  `yaml:"path"`
	Label    string  `yaml:"label"`
	Exact    bool    `yaml:"exact"`
	Page     string  `yaml:"page,omitempty"` // Page component mounted at Path; empty renders a placeholder.
	Children []Entry `yaml:"children,omitempty"`
}

// FlatRoute is an Entry positioned in document order.
type FlatRoute struct {
	Path       string
	Label      string
	Page       string
	Exact      bool
	Ordinal    int    // 1-based position among top-level entries.
	SubOrdinal int    // 1-based position within the parent, 0 for top-level entries.
	Depth      int    // 1 for chapters, 2 for sections.
	Number     string // "3" or "2.1".
}

// Title returns the numbered label as shown in the sidebar, e.g. "2.1. Hamming Codes".
func (f FlatRoute) Title() string {
	return fmt.Sprintf("%s. %s", f.Number, f.Label)
}

// Configuration errors reported by New.
var (
	ErrEmpty         = errors.New("route tree is empty")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrInvalidPath   = errors.New("route path must start with /")
	ErrEmptyLabel    = errors.New("route label is empty")
	ErrTooDeep       = errors.New("routes may only nest one level")
)
