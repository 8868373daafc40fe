package rules_test

import (
	"testing"

	"ucss/class"
	"ucss/rules"
	"ucss/values"
)

func TestEscape_RoundTrip(t *testing.T) {
	// every raw class token must survive escape -> unescape unchanged
	inputs := []string{
		"flex",
		"hover:bg-blue-500",
		"md:hover:bg-blue-500/50",
		"w-[13px]",
		"bg-[#1da1f2]",
		"!p-4",
		"-mt-4",
		"group-hover/sidebar:text-white",
		"aria-checked:underline",
		"w-[calc(100%_-_2rem)]",
		"bg-[url(https://x.test/a.png)]",
	}

	c := rules.NewComposer(values.NewRegistry(), rules.Options{}, nil)
	for _, raw := range inputs {
		p, err := class.Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", raw, err)
		}
		r, ok := c.Compose(p)
		if !ok {
			t.Fatalf("Compose(%q) produced no rule", raw)
		}
		token := r.Selector[1:] // strip the leading dot
		if got := rules.UnescapeClassToken(token); got != raw {
			t.Errorf("round trip of %q via %q = %q", raw, token, got)
		}
	}
}

func TestEscape_SpecialCharacters(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"colon":        {input: "hover:flex", want: `.hover\:flex`},
		"brackets":     {input: "w-[50%]", want: `.w-\[50\%\]`},
		"slash":        {input: "w-1/2", want: `.w-1\/2`},
		"bang":         {input: "!block", want: `.\!block`},
		"leading dash": {input: "-mt-4", want: `.\-mt-4`},
		"hash":         {input: "bg-[#fff]", want: `.bg-\[\#fff\]`},
		"dot":          {input: "m-0.5", want: `.m-0\.5`},
	}

	c := rules.NewComposer(values.NewRegistry(), rules.Options{}, nil)
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
			if r.Selector != tt.want {
				t.Errorf("Selector = %q, want %q", r.Selector, tt.want)
			}
		})
	}
}
