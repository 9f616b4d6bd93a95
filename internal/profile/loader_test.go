package profile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuiltinProfiles(t *testing.T) {
	if got := Available(); !reflect.DeepEqual(got, []string{"default", "sensitive"}) {
		t.Fatalf("Available() = %v, want [default sensitive]", got)
	}

	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			p, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", name, err)
			}
			if p.Name != name {
				t.Errorf("Name = %q, want %q", p.Name, name)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if len(p.Sequences) == 0 {
				t.Error("expected a sequence catalog")
			}

			src, err := Source(name)
			if err != nil {
				t.Fatalf("Source(%q) failed: %v", name, err)
			}
			if !strings.Contains(string(src), "name: "+name) {
				t.Errorf("Source(%q) does not contain the profile name", name)
			}
		})
	}
}

func TestDefaultProfileThresholds(t *testing.T) {
	p := Default()
	if p.LineThreshold != 0.2 || p.MinCodeLineRatio != 0.5 || p.MinScore != 0.1 {
		t.Errorf("default thresholds = %v/%v/%v, want 0.2/0.5/0.1",
			p.LineThreshold, p.MinCodeLineRatio, p.MinScore)
	}
	if w := p.Heuristics["operators"]; w.Weight != 3 || w.Scale != 0.5 {
		t.Errorf("operators weight = %+v, want {3 0.5}", w)
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("nope"); err == nil {
		t.Error("Load(\"nope\") should fail")
	}
	if _, err := Source("nope"); err == nil {
		t.Error("Source(\"nope\") should fail")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	valid := `name: custom
line_threshold: 0.3
min_code_line_ratio: 0.6
min_score: 0.2
heuristics:
  curly-braces: {weight: 1, scale: 1}
sequences: ["=>"]
`
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte(valid), 0o644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	p, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if p.Name != "custom" || p.MinCodeLineRatio != 0.6 {
		t.Errorf("unexpected profile: %+v", p)
	}
	if got := p.HeuristicNames(); !reflect.DeepEqual(got, []string{"curly-braces"}) {
		t.Errorf("HeuristicNames() = %v", got)
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFromFile should fail for a missing file")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Profile {
		return &Profile{
			Name:             "test",
			LineThreshold:    0.2,
			MinCodeLineRatio: 0.5,
			MinScore:         0.1,
			Heuristics: map[string]Weight{
				"semicolons": {Weight: 1, Scale: 1},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr string
	}{
		{"valid", func(p *Profile) {}, ""},
		{"no name", func(p *Profile) { p.Name = "" }, "no name"},
		{"threshold above one", func(p *Profile) { p.LineThreshold = 1.5 }, "line_threshold"},
		{"negative ratio", func(p *Profile) { p.MinCodeLineRatio = -0.1 }, "min_code_line_ratio"},
		{"no heuristics", func(p *Profile) { p.Heuristics = nil }, "no heuristics"},
		{"negative weight", func(p *Profile) {
			p.Heuristics["semicolons"] = Weight{Weight: -1, Scale: 1}
		}, "negative weight"},
		{"zero scale", func(p *Profile) {
			p.Heuristics["semicolons"] = Weight{Weight: 1, Scale: 0}
		}, "positive scale"},
		{"all zero weights", func(p *Profile) {
			p.Heuristics["semicolons"] = Weight{Weight: 0, Scale: 1}
		}, "all heuristic weights are zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
