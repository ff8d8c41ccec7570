package pages

import (
	"context"
	"errors"
	"html/template"
)

// Service is the remote cryptography service the exercise forms talk to.
type Service interface {
	VerifyISBN(ctx context.Context, isbn string) (string, error)
	VerifyCCN(ctx context.Context, ccn string) (string, error)
	HammingCheckDigits(ctx context.Context, input string) (string, error)
	HammingSyndromes(ctx context.Context, input string) (string, error)
	VerifyBCH(ctx context.Context, input string) (string, error)
	Hash(ctx context.Context, input string) (string, error)
	Crack(ctx context.Context, hashes []string) ([]string, error)
	CrackBCH(ctx context.Context, hashes []string) ([]string, error)
}

// InputKind selects how a form's field is rendered.
type InputKind int

const (
	InputText InputKind = iota
	InputNumeric
	InputMultiline
)

// Form is one exercise form on a page.
type Form struct {
	ID          string
	Heading     string
	Placeholder string
	Button      string
	Input       InputKind
	MinLength   int
	MaxLength   int

	submit func(ctx context.Context, svc Service, value string) Result
}

// Numeric reports whether the field only takes digits.
func (f Form) Numeric() bool { return f.Input == InputNumeric }

// Multiline reports whether the field is a textarea.
func (f Form) Multiline() bool { return f.Input == InputMultiline }

// Result is what a submitted form displays.
type Result struct {
	Text    string
	Columns []string
	Rows    [][]string
	Failed  bool
}

// IsTable reports whether the result is tabular.
func (r Result) IsTable() bool { return len(r.Columns) > 0 }

// Page is an opaque chapter body: an intro and its forms.
type Page struct {
	ID    string
	Title string
	Intro template.HTML
	Forms []Form
}

// Form looks up a form by id.
func (p *Page) Form(id string) (*Form, bool) {
	for i := range p.Forms {
		if p.Forms[i].ID == id {
			return &p.Forms[i], true
		}
	}
	return nil, false
}

var (
	ErrUnknownPage = errors.New("unknown page")
	ErrUnknownForm = errors.New("unknown form")
)
