package planning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDomainJSON = `{
  "name": "mini",
  "actions": [
    {"name": "go", "pre": ["at(a)"], "add": ["at(b)"], "del": ["at(a)"]},
    {"name": "pick", "pre": ["at(b)"], "add": ["have(key)"]}
  ]
}`

func TestParseDomain(t *testing.T) {
	dom, err := ParseDomain([]byte(validDomainJSON))
	if err != nil {
		t.Fatal(err)
	}
	if dom.Name != "mini" {
		t.Errorf("Name = %q, want %q", dom.Name, "mini")
	}
	if dom.Len() != 2 {
		t.Errorf("Len() = %d, want 2", dom.Len())
	}

	final, err := Simulate(NewState("at(a)"), []string{"go", "pick"}, dom)
	if err != nil {
		t.Fatal(err)
	}
	if !final.Contains("have(key)") || final.Contains("at(a)") {
		t.Errorf("unexpected final state %s", final)
	}
}

func TestParseDomainRejectsBadJSON(t *testing.T) {
	if _, err := ParseDomain([]byte(`{`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestParseDomainSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing actions", `{"name": "x"}`},
		{"empty action name", `{"name": "x", "actions": [{"name": ""}]}`},
		{"unknown field", `{"name": "x", "actions": [{"name": "a", "effects": []}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDomain([]byte(tc.raw))
			if err == nil || !strings.Contains(err.Error(), "validation failed") {
				t.Errorf("err = %v, want schema validation failure", err)
			}
		})
	}
}

func TestParseDomainRejectsAddDelOverlap(t *testing.T) {
	raw := `{"name": "x", "actions": [{"name": "a", "add": ["p"], "del": ["p"]}]}`
	_, err := ParseDomain([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "both adds and deletes") {
		t.Errorf("err = %v, want add/delete overlap error", err)
	}
}

func TestLoadDomain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domain.json")
	if err := os.WriteFile(path, []byte(validDomainJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	dom, err := LoadDomain(path)
	if err != nil {
		t.Fatal(err)
	}
	if dom.Name != "mini" {
		t.Errorf("Name = %q, want %q", dom.Name, "mini")
	}

	if _, err := LoadDomain(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
