package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ziadkadry99/cryptobook/internal/routes"
)

func TestPrintTOC(t *testing.T) {
	model := routes.MustNew([]routes.Entry{
		{Path: "/", Label: "Intro", Exact: true, Page: "intro"},
		{Path: "/a", Label: "A", Children: []routes.Entry{
			{Path: "/a/one", Label: "One", Exact: true},
		}},
	})

	var buf bytes.Buffer
	if err := printTOC(&buf, model); err != nil {
		t.Fatalf("printTOC: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Table of contents (3 entries)") {
		t.Errorf("missing heading:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected heading, column row and 3 entries, got %d lines:\n%s", len(lines), out)
	}
	if f := strings.Fields(lines[2]); f[0] != "1" || f[2] != "/" || f[5] != "-" || f[6] != "/a" {
		t.Errorf("first entry = %v", f)
	}
	if f := strings.Fields(lines[3]); f[0] != "2" || f[3] != "prefix" || f[4] != "-" {
		t.Errorf("second entry = %v", f)
	}
	if f := strings.Fields(lines[4]); f[0] != "2.1" || f[5] != "/a" || f[6] != "-" {
		t.Errorf("section entry = %v", f)
	}
}
