package config

// #region imports
import (
	"fmt"
	"os"

	"github.com/danielpatrickdp/module-affinity/go-engine/internal/classifier"
	"github.com/danielpatrickdp/module-affinity/go-engine/internal/learner"
	"gopkg.in/yaml.v3"
)

// #endregion

// #region config

// Config bundles engine settings. The learning constants and the keyword
// table are configurable but ship with the canonical defaults; changing them
// changes score trajectories that downstream consumers may depend on.
type Config struct {
	StatePath   string `yaml:"state_path"`
	TelemetryDB string `yaml:"telemetry_db"`
	SkillsDir   string `yaml:"skills_dir"`

	Learner    learner.Config        `yaml:"learner"`
	Fitness    learner.FitnessPolicy `yaml:"fitness"`
	Classifier classifier.Table      `yaml:"classifier"` // empty = built-in table
}

// Default returns the canonical configuration.
func Default() Config {
	return Config{
		StatePath:   "affinity_matrix.json",
		TelemetryDB: "affinity_telemetry.db",
		SkillsDir:   "skills",
		Learner:     learner.DefaultConfig(),
		Fitness:     learner.DefaultFitnessPolicy(),
	}
}

// #endregion config

// #region load

// Load reads a YAML config file over the defaults. A missing file is not an
// error: the defaults stand. A file that parses but names unknown task types
// in the classifier table is rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Classifier) > 0 {
		if err := cfg.Classifier.Validate(); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Table returns the classifier table to use: the configured override or the
// built-in default.
func (c Config) Table() classifier.Table {
	if len(c.Classifier) > 0 {
		return c.Classifier
	}
	return classifier.DefaultTable()
}

// #endregion load
