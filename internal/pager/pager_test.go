package pager

import (
	"testing"

	"github.com/ziadkadry99/cryptobook/internal/routes"
)

func bookRoutes() []routes.FlatRoute {
	return routes.MustNew(routes.Default()).Flatten()
}

func TestResolveMiddle(t *testing.T) {
	l := Resolve(bookRoutes(), "/week3")
	if l.Prev == nil || l.Prev.Path != "/week2" {
		t.Errorf("prev = %+v, want /week2", l.Prev)
	}
	if l.Next == nil || l.Next.Path != "/week4" {
		t.Errorf("next = %+v, want /week4", l.Next)
	}
	if l.Prev.Title != "3. Hamming Codes" {
		t.Errorf("prev title = %q", l.Prev.Title)
	}
}

func TestResolveFirstHasNoPrev(t *testing.T) {
	l := Resolve(bookRoutes(), "/")
	if l.Prev != nil {
		t.Errorf("prev = %+v, want none", l.Prev)
	}
	if l.Next == nil || l.Next.Path != "/week1" {
		t.Errorf("next = %+v, want /week1", l.Next)
	}
}

func TestResolveLastHasNoNext(t *testing.T) {
	l := Resolve(bookRoutes(), "/week7")
	if l.Next != nil {
		t.Errorf("next = %+v, want none", l.Next)
	}
	if l.Prev == nil || l.Prev.Path != "/week6" {
		t.Errorf("prev = %+v, want /week6", l.Prev)
	}
}

func TestResolveUnknownPath(t *testing.T) {
	for _, p := range []string{"/nope", "/week3/", "", "/WEEK3"} {
		if l := Resolve(bookRoutes(), p); !l.Empty() {
			t.Errorf("Resolve(%q) = %+v, want empty", p, l)
		}
	}
}

func TestResolveSinglePage(t *testing.T) {
	flat := routes.MustNew([]routes.Entry{{Path: "/", Label: "Only"}}).Flatten()
	if l := Resolve(flat, "/"); !l.Empty() {
		t.Errorf("single page should have no neighbours, got %+v", l)
	}
}

func TestResolveWalksIntoSections(t *testing.T) {
	flat := routes.MustNew([]routes.Entry{
		{Path: "/", Label: "Intro"},
		{Path: "/codes", Label: "Codes", Children: []routes.Entry{
			{Path: "/codes/hamming", Label: "Hamming"},
			{Path: "/codes/bch", Label: "BCH"},
		}},
		{Path: "/hash", Label: "Hash"},
	}).Flatten()

	l := Resolve(flat, "/codes")
	if l.Next == nil || l.Next.Path != "/codes/hamming" {
		t.Errorf("next of parent = %+v, want first section", l.Next)
	}

	l = Resolve(flat, "/codes/bch")
	if l.Prev == nil || l.Prev.Path != "/codes/hamming" {
		t.Errorf("prev = %+v", l.Prev)
	}
	if l.Next == nil || l.Next.Path != "/hash" || l.Next.Title != "3. Hash" {
		t.Errorf("next = %+v", l.Next)
	}
}

func TestScenarioIntroAB(t *testing.T) {
	flat := routes.MustNew([]routes.Entry{
		{Path: "/", Label: "Intro"},
		{Path: "/week1", Label: "A"},
		{Path: "/week2", Label: "B"},
	}).Flatten()

	l := Resolve(flat, "/week1")
	if l.Prev == nil || l.Prev.Path != "/" || l.Next == nil || l.Next.Path != "/week2" {
		t.Errorf("Resolve(/week1) = prev %+v next %+v", l.Prev, l.Next)
	}
}
