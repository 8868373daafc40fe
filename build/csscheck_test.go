package build

import (
	"testing"

	"ucss/rules"
)

func TestInspectSheet(t *testing.T) {
	info := inspectSheet([]byte(`
.brand {
  color: rebeccapurple;
  --brand-hue: 270;
}
@media (min-width: 768px) {
  .brand {
    color: purple;
  }
}
`))
	if info.Broken {
		t.Error("valid sheet reported as broken")
	}
	if info.Rulesets != 2 {
		t.Errorf("Rulesets = %d, want 2", info.Rulesets)
	}
	if info.Declarations != 3 {
		t.Errorf("Declarations = %d, want 3", info.Declarations)
	}
}

func TestInspectSheetEmpty(t *testing.T) {
	info := inspectSheet(nil)
	if info.Broken || info.Rulesets != 0 || info.Declarations != 0 {
		t.Errorf("unexpected summary for empty input: %+v", info)
	}
}

func TestGeneratedOutputParses(t *testing.T) {
	css, stats := NewGenerator(rules.Options{}, nil).Generate([]string{
		"flex", "p-4", "hover:bg-blue-500/50", "md:grid", "dark:text-white",
		"!m-2", "w-[13px]", "group-hover:underline", "@sm:truncate", "max-md:hidden",
	})

	info := inspectSheet([]byte(css))
	if info.Broken {
		t.Fatalf("generated output does not parse as CSS:\n%s", css)
	}
	if info.Rulesets != stats.Rules {
		t.Errorf("parser found %d rulesets, generator reported %d:\n%s", info.Rulesets, stats.Rules, css)
	}
	if info.Declarations == 0 {
		t.Error("no declarations found in generated output")
	}
}
