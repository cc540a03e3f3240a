package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// DefaultJWTSecret is the fallback signing key used when no secret is
// configured. It matches the original app's default and is NOT safe for
// anything beyond a local teaching setup.
const DefaultJWTSecret = "your-secret-key"

type Config struct {
	Server Server `yaml:"server"`

	JWT JWT `yaml:"jwt"`

	Storage Storage `yaml:"storage"`
}

type Server struct {
	Address string `yaml:"address"`
}

type JWT struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // In Hours
}

type Storage struct {
	DataDir   string `yaml:"data_dir"`
	BackupDir string `yaml:"backup_dir"`
}

// Load reads configuration from configs/development.yaml (or the file
// named by CONFIG_PATH), after loading a .env file if one exists.
// JWT_SECRET and DATA_DIR environment variables override the file.
func Load() (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	configPath := "configs/development.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	var cfg Config
	f, err := os.Open(configPath)
	if err != nil {
		// Only a missing default file falls back to defaults; an
		// explicitly configured path must exist.
		if !os.IsNotExist(err) || os.Getenv("CONFIG_PATH") != "" {
			return nil, err
		}
	} else {
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, err
		}
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.JWT.ExpiresIn <= 0 {
		cfg.JWT.ExpiresIn = 24
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.JWT.Secret == "" {
		log.Println("WARNING: JWT_SECRET not set, using the insecure built-in default")
		cfg.JWT.Secret = DefaultJWTSecret
	}

	return &cfg, nil
}
