package rules_test

import (
	"strings"
	"testing"

	"ucss/class"
	"ucss/rules"
	"ucss/values"
)

func buildSet(t *testing.T, classes ...string) *rules.Set {
	t.Helper()
	c := rules.NewComposer(values.NewRegistry(), rules.Options{}, nil)
	set := rules.NewSet()
	for _, raw := range classes {
		p, err := class.Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", raw, err)
		}
		if r, ok := c.Compose(p); ok {
			set.Add(r)
		}
	}
	return set
}

func selectors(s *rules.Set) []string {
	out := make([]string, 0, s.Len())
	for _, r := range s.Rules() {
		out = append(out, r.Selector)
	}
	return out
}

func TestSet_DedupKeepsFirstSeen(t *testing.T) {
	set := buildSet(t, "p-4", "p-4", "p-4")

	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", set.Len())
	}
	if set.Rules()[0].Selector != ".p-4" {
		t.Errorf("Selector = %q", set.Rules()[0].Selector)
	}
}

func TestSet_AddReportsDuplicate(t *testing.T) {
	c := rules.NewComposer(values.NewRegistry(), rules.Options{}, nil)
	set := rules.NewSet()

	p, _ := class.Parse("flex")
	r1, _ := c.Compose(p)
	r2, _ := c.Compose(p)

	if !set.Add(r1) {
		t.Error("first Add() = false, want true")
	}
	if set.Add(r2) {
		t.Error("second Add() = true, want false")
	}
}

func TestSet_TierOrdering(t *testing.T) {
	set := buildSet(t,
		"!m-2",            // important, must be last
		"md:flex",         // responsive
		"hover:underline", // variant
		"block",           // plain
	)
	set.Sort()

	want := []string{".block", `.hover\:underline`, `.md\:flex`, `.\!m-2`}
	got := selectors(set)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSet_BreakpointsAscendMobileFirst(t *testing.T) {
	set := buildSet(t, "2xl:flex", "sm:flex", "xl:flex", "md:flex", "lg:flex")
	set.Sort()

	want := []string{`.sm\:flex`, `.md\:flex`, `.lg\:flex`, `.xl\:flex`, `.2xl\:flex`}
	got := selectors(set)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSet_MaxWidthAfterMinWidthLargestFirst(t *testing.T) {
	set := buildSet(t, "max-sm:flex", "max-2xl:flex", "2xl:flex", "print:flex")
	set.Sort()

	want := []string{`.2xl\:flex`, `.max-2xl\:flex`, `.max-sm\:flex`, `.print\:flex`}
	got := selectors(set)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSet_ImportantAlwaysLast(t *testing.T) {
	set := buildSet(t, "!block", "2xl:flex", "hover:underline", "p-4", "!md:flex")
	set.Sort()

	rs := set.Rules()
	seenImportant := false
	for _, r := range rs {
		if r.Important {
			seenImportant = true
		} else if seenImportant {
			t.Fatalf("non-important rule %q after important one", r.Selector)
		}
	}
	if !seenImportant {
		t.Fatal("no important rules composed")
	}
}

func TestSet_SortIsDeterministic(t *testing.T) {
	classes := []string{"md:flex", "p-4", "hover:underline", "sm:block", "!m-2", "bg-blue-500", "lg:p-2"}

	var first string
	for i := 0; i < 5; i++ {
		set := buildSet(t, classes...)
		set.Sort()
		out := set.RenderAll()
		if i == 0 {
			first = out
			continue
		}
		if out != first {
			t.Fatalf("iteration %d produced different output", i)
		}
	}
}

func TestSet_LexicographicTiebreak(t *testing.T) {
	set := buildSet(t, "inline", "block", "flex", "grid")
	set.Sort()

	want := []string{".block", ".flex", ".grid", ".inline"}
	got := selectors(set)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSet_RenderAllJoinsWithNewline(t *testing.T) {
	set := buildSet(t, "block", "flex")
	set.Sort()

	out := set.RenderAll()
	if !strings.Contains(out, "}\n.flex {") {
		t.Errorf("unexpected join:\n%s", out)
	}
}
