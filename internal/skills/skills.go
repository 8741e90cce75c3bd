package skills

// #region imports
import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region definition

// Definition describes a skill: a named bundle of module/variant selections.
// The batch learner looks these up to know which variants a logged task used.
type Definition struct {
	Name    string            `yaml:"name"`
	Modules map[string]string `yaml:"modules"`
}

// #endregion definition

// #region library

// Library holds skill definitions loaded from a directory of YAML files.
type Library struct {
	defs map[string]Definition
}

// Load reads every *.yaml/*.yml file under dir. Files that fail to parse or
// lack a name are skipped; a bad skill file must not block learning from the
// rest. A missing directory yields an empty library.
func Load(dir string) (*Library, error) {
	lib := &Library{defs: make(map[string]Definition)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return nil, fmt.Errorf("read skills dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		var def Definition
		if err := yaml.Unmarshal(data, &def); err != nil {
			continue
		}
		if def.Name == "" {
			// Fall back to the filename stem, matching how skills are keyed.
			def.Name = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		}
		lib.defs[def.Name] = def
	}
	return lib, nil
}

// Lookup returns the named skill definition.
func (l *Library) Lookup(name string) (Definition, bool) {
	def, ok := l.defs[name]
	return def, ok
}

// Len returns the number of loaded definitions.
func (l *Library) Len() int {
	return len(l.defs)
}

// #endregion library
