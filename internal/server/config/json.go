package config

import (
	"encoding/json"
	"os"

	"github.com/ymatsuzawa/foodkeeper/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, non-empty fields are copied
// into the runtime Config.
type JsonConfig struct {
	Addr        string `json:"address"`
	DatabaseDSN string `json:"database_dsn"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named nothing
// happens; an unreadable or invalid file panics, since starting with a
// half-applied config would be worse.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
}
