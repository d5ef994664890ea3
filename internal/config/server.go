package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// When set, table add/remove require the admin key.
	AdminAPIKey string `env:"ADMIN_API_KEY"`

	// Seed floor plan: a JSON file path wins over inline JSON; when both
	// are empty the built-in default plan is used.
	SeedPlanPath string `env:"SEED_PLAN_PATH"`
	SeedPlanJSON string `env:"SEED_PLAN_JSON"`

	JournalCapacity int `env:"JOURNAL_CAPACITY" envDefault:"64"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
