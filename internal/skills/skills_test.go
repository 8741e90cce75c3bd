package skills

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndLookup(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"coder.yaml":  "name: coder\nmodules:\n  research: v2\n  structure: v1\n",
		"writer.yml":  "name: writer\nmodules:\n  output: v1\n",
		"notes.txt":   "not a skill",
		"broken.yaml": "name: [unclosed",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lib.Len() != 2 {
		t.Errorf("skills loaded: got %d, want 2", lib.Len())
	}

	def, ok := lib.Lookup("coder")
	if !ok {
		t.Fatal("coder not found")
	}
	if def.Modules["research"] != "v2" || def.Modules["structure"] != "v1" {
		t.Errorf("modules: got %v", def.Modules)
	}

	if _, ok := lib.Lookup("broken"); ok {
		t.Error("unparseable skill file was loaded")
	}
	if _, ok := lib.Lookup("notes"); ok {
		t.Error("non-yaml file was loaded")
	}
}

func TestLoadNameFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "reviewer.yaml"), []byte("modules:\n  validation: v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def, ok := lib.Lookup("reviewer")
	if !ok {
		t.Fatal("filename-keyed skill not found")
	}
	if def.Name != "reviewer" {
		t.Errorf("name: got %q, want reviewer", def.Name)
	}
}

func TestLoadMissingDir(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing dir treated as error: %v", err)
	}
	if lib.Len() != 0 {
		t.Errorf("skills: got %d, want 0", lib.Len())
	}
}
