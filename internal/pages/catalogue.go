// Package pages holds the chapter bodies of the book. Each page is an intro
// written in markdown plus the exercise forms that forward their input to the
// cryptography service.
package pages

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed content/*.md
var content embed.FS

const (
	notFound  = "Not Found"
	noAnswers = "No answers."
)

// Catalogue is the set of page components, keyed by id.
type Catalogue struct {
	svc   Service
	pages map[string]*Page
	order []string
}

// NewCatalogue renders every page intro and binds the forms to svc.
func NewCatalogue(svc Service) (*Catalogue, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	c := &Catalogue{svc: svc, pages: make(map[string]*Page)}
	for _, p := range definitions() {
		src, err := content.ReadFile("content/" + p.ID + ".md")
		if err != nil {
			return nil, fmt.Errorf("reading content for %s: %w", p.ID, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("converting markdown for %s: %w", p.ID, err)
		}
		p.Intro = template.HTML(buf.String())
		c.pages[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c, nil
}

// Lookup returns the page with the given id.
func (c *Catalogue) Lookup(id string) (*Page, bool) {
	p, ok := c.pages[id]
	return p, ok
}

// IDs returns every page id in definition order.
func (c *Catalogue) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Submit runs one form. Service failures come back as a failed Result rather
// than an error; only an unknown page or form is an error.
func (c *Catalogue) Submit(ctx context.Context, pageID, formID, value string) (Result, error) {
	p, ok := c.pages[pageID]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownPage, pageID)
	}
	f, ok := p.Form(formID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q on page %q", ErrUnknownForm, formID, pageID)
	}
	// Digits are trimmed; text goes to the service exactly as typed.
	if f.Numeric() {
		value = strings.TrimSpace(value)
	}
	if value == "" {
		return Result{Text: "Please enter a value.", Failed: true}, nil
	}
	return f.submit(ctx, c.svc, value), nil
}

// textCall adapts a single-value service call into a form handler.
func textCall(call func(Service, context.Context, string) (string, error)) func(context.Context, Service, string) Result {
	return func(ctx context.Context, svc Service, value string) Result {
		text, err := call(svc, ctx, value)
		if err != nil {
			return failed(err)
		}
		return Result{Text: text}
	}
}

// tableCall adapts a batch service call: one input per line, answers paired
// with the inputs by position.
func tableCall(answerColumn string, call func(Service, context.Context, []string) ([]string, error)) func(context.Context, Service, string) Result {
	return func(ctx context.Context, svc Service, value string) Result {
		lines := splitLines(value)
		answers, err := call(svc, ctx, lines)
		if err != nil {
			return failed(err)
		}
		if len(answers) == 0 {
			return Result{Text: noAnswers}
		}

		res := Result{Columns: []string{"Hash", answerColumn}}
		for i, answer := range answers {
			hash := ""
			if i < len(lines) {
				hash = lines[i]
			}
			if answer == "" {
				answer = notFound
			}
			res.Rows = append(res.Rows, []string{hash, answer})
		}
		return res
	}
}

func splitLines(value string) []string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.Split(value, "\n")
}

func failed(err error) Result {
	return Result{Text: "The cryptography service could not answer: " + err.Error(), Failed: true}
}
