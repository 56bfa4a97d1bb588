package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kthiza/protein-tracking-app/pipeline"
)

const tablesPathEnv = "FOOD_TABLES_PATH"

// LoadTables reads the pipeline lookup tables (nutrient database, synonym
// table, non-food denylist, dish patterns) from the YAML file named by
// FOOD_TABLES_PATH, falling back to the compiled-in defaults when the
// variable is unset. The tables are data, editable without recompiling.
//
// Any read or parse failure is returned to the caller, which must fail
// fast: serving against a partially populated table is worse than not
// starting.
func LoadTables() (*pipeline.Tables, error) {
	path := os.Getenv(tablesPathEnv)
	if path == "" {
		return pipeline.DefaultTables(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read food tables %s: %w", path, err)
	}

	tables := &pipeline.Tables{MaxItems: 4}
	if err := yaml.Unmarshal(raw, tables); err != nil {
		return nil, fmt.Errorf("config: cannot parse food tables %s: %w", path, err)
	}
	return tables, nil
}
