// Package sidebar projects the route tree into the numbered chapter list shown
// on the left of every page.
package sidebar

import (
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/ziadkadry99/cryptobook/internal/routes"
)

// Visibility classes applied to the sidebar wrapper.
const (
	ClassVisible = "sidebar-visible"
	ClassHidden  = "sidebar-hidden"
)

// Link is one numbered sidebar link.
type Link struct {
	Number string // "2" or "2.1"
	Label  string
	Path   string
	Active bool
}

// Text returns the link text as rendered, e.g. "2.1. Hamming".
func (l Link) Text() string {
	return l.Number + ". " + l.Label
}

// Item is a chapter and its sections. Sections never have sections of their own.
type Item struct {
	Link
	Children []Link
}

// View is the rendered sidebar model.
type View struct {
	Visible bool
	Items   []Item
}

// Build numbers the tree of m. The chapter counter advances once per top-level
// entry, and each chapter starts a fresh section counter.
func Build(m *routes.Model, visible bool, activePath string) View {
	entries := m.Entries()
	v := View{Visible: visible, Items: make([]Item, 0, len(entries))}

	counter := 0
	for _, e := range entries {
		counter++
		num := strconv.Itoa(counter)
		item := Item{Link: Link{
			Number: num,
			Label:  e.Label,
			Path:   e.Path,
			Active: e.Path == activePath,
		}}

		sub := 0
		for _, child := range e.Children {
			sub++
			item.Children = append(item.Children, Link{
				Number: num + "." + strconv.Itoa(sub),
				Label:  child.Label,
				Path:   child.Path,
				Active: child.Path == activePath,
			})
		}
		v.Items = append(v.Items, item)
	}
	return v
}

// Class returns the wrapper class for the current visibility.
func (v View) Class() string {
	if v.Visible {
		return ClassVisible
	}
	return ClassHidden
}

// Links returns every link in reading order.
func (v View) Links() []Link {
	var out []Link
	for _, item := range v.Items {
		out = append(out, item.Link)
		out = append(out, item.Children...)
	}
	return out
}

// HTML renders the sidebar markup. A chapter with sections becomes two list
// items: its own link, then an item wrapping the ordered list of sections.
func (v View) HTML() template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s">`+"\n", v.Class())
	b.WriteString(`<nav class="sidebar"><div class="sidebar-scrollbox">` + "\n")
	b.WriteString(`<ol class="chapter">` + "\n")
	for _, item := range v.Items {
		if len(item.Children) == 0 {
			writeLink(&b, "chapter-item", item.Link)
			continue
		}
		writeLink(&b, "chapter-item expanded", item.Link)
		b.WriteString(`<li><ol class="section expanded">` + "\n")
		for _, child := range item.Children {
			writeLink(&b, "chapter-item expanded", child)
		}
		b.WriteString("</ol></li>\n")
	}
	b.WriteString("</ol>\n</div></nav>\n</div>\n")
	return template.HTML(b.String())
}

func writeLink(b *strings.Builder, class string, l Link) {
	active := ""
	if l.Active {
		active = ` class="active"`
	}
	fmt.Fprintf(b, `<li class="%s"><a href="%s"%s><strong>%s. </strong>%s</a></li>`+"\n",
		class, html.EscapeString(l.Path), active, l.Number, html.EscapeString(l.Label))
}
