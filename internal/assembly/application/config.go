package application

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	assembly "arx-bim/internal/assembly/domain"
)

// ServiceConfig is the deployment configuration of the assembly service.
// Values come from an optional yaml file pointed at by ASSEMBLY_CONFIG,
// with environment variables filling the gaps.
type ServiceConfig struct {
	ListenAddr      string          `yaml:"listen_addr"`
	DatabaseURL     string          `yaml:"database_url"`
	JWTSecret       string          `yaml:"jwt_secret"`
	ClusterDistance float64         `yaml:"cluster_distance"`
	Assembly        assembly.Config `yaml:"assembly"`
}

// LoadServiceConfig loads service configuration from yaml or env.
func LoadServiceConfig() (ServiceConfig, error) {
	cfg := ServiceConfig{
		ListenAddr:      getenvDefault("ASSEMBLY_LISTEN_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("ASSEMBLY_DATABASE_URL"),
		JWTSecret:       os.Getenv("ASSEMBLY_JWT_SECRET"),
		ClusterDistance: getenvFloatDefault("ASSEMBLY_CLUSTER_DISTANCE", DefaultClusterDistance),
		Assembly:        assembly.DefaultConfig(),
	}

	if path := os.Getenv("ASSEMBLY_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.ClusterDistance <= 0 {
		cfg.ClusterDistance = DefaultClusterDistance
	}
	cfg.Assembly = cfg.Assembly.Normalize()
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvFloatDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
