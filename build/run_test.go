package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ucss/config"
)

func TestAssemble(t *testing.T) {
	dir := t.TempDir()
	inj := filepath.Join(dir, "extra.css")
	if err := os.WriteFile(inj, []byte(".brand {\n  color: rebeccapurple;\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("full document", func(t *testing.T) {
		out, err := assemble(config.OutputConfig{Preflight: true, Inject: []string{inj}}, ".flex {\n  display: flex;\n}", nil)
		if err != nil {
			t.Fatal(err)
		}

		reset := strings.Index(out, "box-sizing: border-box")
		brand := strings.Index(out, ".brand {")
		flex := strings.Index(out, ".flex {")
		if reset < 0 || brand < 0 || flex < 0 {
			t.Fatalf("document incomplete:\n%s", out)
		}
		if !(reset < brand && brand < flex) {
			t.Errorf("wrong section order: reset=%d brand=%d flex=%d", reset, brand, flex)
		}
		if !strings.HasSuffix(out, "}\n") {
			t.Errorf("document not newline terminated: %q", out[len(out)-4:])
		}
	})

	t.Run("utilities only", func(t *testing.T) {
		out, err := assemble(config.OutputConfig{}, ".flex {\n  display: flex;\n}", nil)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(out, "box-sizing") {
			t.Error("base reset present without preflight")
		}
		if out != ".flex {\n  display: flex;\n}\n" {
			t.Errorf("unexpected document: %q", out)
		}
	})

	t.Run("missing injected sheet", func(t *testing.T) {
		_, err := assemble(config.OutputConfig{Inject: []string{filepath.Join(dir, "absent.css")}}, "", nil)
		if err == nil {
			t.Error("expected error for missing injected sheet")
		}
	})

	t.Run("nothing to emit", func(t *testing.T) {
		out, err := assemble(config.OutputConfig{}, "", nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 0 {
			t.Errorf("expected empty document, got %q", out)
		}
	})
}
