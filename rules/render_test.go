package rules_test

import (
	"testing"

	"ucss/class"
	"ucss/rules"
	"ucss/values"
)

func render(t *testing.T, raw string, opts rules.Options) string {
	t.Helper()
	return rules.Render(compose(t, raw, opts))
}

func TestRender_PlainRule(t *testing.T) {
	got := render(t, "flex", rules.Options{})
	want := ".flex {\n  display: flex;\n}"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_PseudoSuffix(t *testing.T) {
	got := render(t, "hover:underline", rules.Options{})
	want := ".hover\\:underline:hover {\n  text-decoration-line: underline;\n}"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_MediaWrapped(t *testing.T) {
	got := render(t, "md:flex", rules.Options{})
	want := "@media (min-width: 768px) {\n  .md\\:flex {\n    display: flex;\n  }\n}"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_ContainerInsideMedia(t *testing.T) {
	got := render(t, "md:@sm:flex", rules.Options{})
	want := "@media (min-width: 768px) {\n" +
		"  @container (min-width: 640px) {\n" +
		"    .md\\:\\@sm\\:flex {\n" +
		"      display: flex;\n" +
		"    }\n" +
		"  }\n" +
		"}"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_ContainerAlone(t *testing.T) {
	got := render(t, "@md:flex", rules.Options{})
	want := "@container (min-width: 768px) {\n  .\\@md\\:flex {\n    display: flex;\n  }\n}"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_ImportantAppendsToEveryDeclaration(t *testing.T) {
	got := render(t, "!truncate", rules.Options{})
	want := ".\\!truncate {\n" +
		"  overflow: hidden !important;\n" +
		"  text-overflow: ellipsis !important;\n" +
		"  white-space: nowrap !important;\n" +
		"}"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_ParentSelectorPrecedesBase(t *testing.T) {
	got := render(t, "dark:bg-black", rules.Options{Dark: rules.DarkStrategyClass})
	want := ".dark .dark\\:bg-black {\n  background-color: #000;\n}"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_PeerCombinator(t *testing.T) {
	got := render(t, "peer-checked:block", rules.Options{})
	want := ".peer:checked ~ .peer-checked\\:block {\n  display: block;\n}"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

// keep the scenario list from the package contract in one place
func TestRender_Scenarios(t *testing.T) {
	c := rules.NewComposer(values.NewRegistry(), rules.Options{Dark: rules.DarkStrategyClass}, nil)

	type tc struct {
		input string
		want  string
	}
	tests := map[string]tc{
		"group hover": {
			input: "group-hover:text-white",
			want:  ".group:hover .group-hover\\:text-white {\n  color: #fff;\n}",
		},
		"arbitrary width": {
			input: "w-[13px]",
			want:  ".w-\\[13px\\] {\n  width: 13px;\n}",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := class.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			r, ok := c.Compose(p)
			if !ok {
				t.Fatalf("Compose(%q) produced no rule", tt.input)
			}
			if got := rules.Render(r); got != tt.want {
				t.Errorf("Render() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
