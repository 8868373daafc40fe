package build

import (
	"strings"
	"testing"

	"ucss/rules"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator(rules.Options{}, nil)

	css, stats := g.Generate([]string{
		"md:flex",
		"flex",
		"hover:underline",
		"flex", // duplicate
		"p-4",
		"total-garbage-utility",
		"!", // does not even parse
		"!m-2",
	})

	if stats.Candidates != 8 {
		t.Errorf("Candidates = %d, want 8", stats.Candidates)
	}
	if stats.Parsed != 7 {
		t.Errorf("Parsed = %d, want 7", stats.Parsed)
	}
	if stats.Rules != 5 {
		t.Errorf("Rules = %d, want 5", stats.Rules)
	}

	for _, want := range []string{
		".flex {\n  display: flex;\n}",
		".hover\\:underline:hover {\n  text-decoration-line: underline;\n}",
		"@media (min-width: 768px) {\n  .md\\:flex {\n    display: flex;\n  }\n}",
		"margin: 0.5rem !important;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("output missing %q:\n%s", want, css)
		}
	}
	if strings.Contains(css, "garbage") {
		t.Errorf("unresolvable candidate leaked into output:\n%s", css)
	}

	// plain before variant before responsive before important
	order := []string{".flex {", ".hover\\:underline", "@media (min-width: 768px)", "!important"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(css, marker)
		if idx < 0 || idx < last {
			t.Fatalf("output out of order, %q at %d (previous at %d):\n%s", marker, idx, last, css)
		}
		last = idx
	}
}

func TestGenerateDarkClass(t *testing.T) {
	g := NewGenerator(rules.Options{Dark: rules.DarkStrategyClass, DarkSelector: "theme-dark"}, nil)

	css, _ := g.Generate([]string{"dark:bg-gray-900"})
	if want := ".theme-dark .dark\\:bg-gray-900 {"; !strings.Contains(css, want) {
		t.Errorf("output missing %q:\n%s", want, css)
	}
}

func TestGenerateEmpty(t *testing.T) {
	g := NewGenerator(rules.Options{}, nil)

	css, stats := g.Generate(nil)
	if len(css) != 0 {
		t.Errorf("expected empty output, got %q", css)
	}
	if stats.Rules != 0 {
		t.Errorf("Rules = %d, want 0", stats.Rules)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	classes := []string{"p-4", "md:flex", "hover:underline", "lg:p-2", "sm:p-2", "!w-full", "bg-blue-500/50"}

	g := NewGenerator(rules.Options{}, nil)
	first, _ := g.Generate(classes)

	// shuffled input, fresh generator
	shuffled := []string{"!w-full", "sm:p-2", "hover:underline", "bg-blue-500/50", "md:flex", "lg:p-2", "p-4"}
	second, _ := NewGenerator(rules.Options{}, nil).Generate(shuffled)

	if first != second {
		t.Errorf("output depends on candidate order:\n--- first\n%s\n--- second\n%s", first, second)
	}
}
