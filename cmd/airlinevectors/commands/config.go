package commands

import (
	"os"

	"airlinevectors/lib/configutil"

	"dario.cat/mergo"
)

type Config struct {
	WikiBaseUrl    string `json:"wiki_base_url"`
	AssetBaseUrl   string `json:"asset_base_url"`
	PlaceholderUrl string `json:"placeholder_url"`
	DatasetPath    string `json:"dataset_path"`
	OutputDir      string `json:"output_dir"`
}

func DefaultConfig() Config {
	return Config{
		WikiBaseUrl:    "https://en.wikipedia.org/wiki/List_of_airline_codes_",
		AssetBaseUrl:   "https://assets.airlinecodes.net/logos/",
		PlaceholderUrl: "https://assets.airlinecodes.net/logos/placeholder_sq.svg",
		DatasetPath:    "airline_codes_all.csv",
		OutputDir:      "airline_vectors",
	}
}

// loadConfig returns the fixed defaults, with any fields set in an
// airlinevectors.json5 found up the tree taking precedence. A run without a
// config file uses the defaults alone.
func loadConfig() Config {
	cfg, err := configutil.ReadRecursively[Config]("airlinevectors.json5")
	if os.IsNotExist(err) {
		return DefaultConfig()
	}
	if err != nil {
		fatal("failed to read config", err)
	}

	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		fatal("failed to apply config defaults", err)
	}
	return cfg
}
