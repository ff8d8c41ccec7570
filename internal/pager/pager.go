// Package pager resolves the previous and next chapters around the current location.
package pager

import "github.com/ziadkadry99/cryptobook/internal/routes"

// Link points at a neighbouring page.
type Link struct {
	Path  string
	Title string
}

// Links holds the neighbours of the current page. Either may be nil.
type Links struct {
	Prev *Link
	Next *Link
}

// Empty reports whether there is nothing to navigate to.
func (l Links) Empty() bool {
	return l.Prev == nil && l.Next == nil
}

// Resolve finds current in flat by exact path and returns its neighbours. An
// unknown path has neither neighbour.
func Resolve(flat []routes.FlatRoute, current string) Links {
	i := indexOf(flat, current)
	if i < 0 {
		return Links{}
	}

	var l Links
	if i > 0 {
		l.Prev = linkTo(flat[i-1])
	}
	if i < len(flat)-1 {
		l.Next = linkTo(flat[i+1])
	}
	return l
}

func indexOf(flat []routes.FlatRoute, path string) int {
	for i, r := range flat {
		if r.Path == path {
			return i
		}
	}
	return -1
}

func linkTo(r routes.FlatRoute) *Link {
	return &Link{Path: r.Path, Title: r.Title()}
}
