package storefront

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrConfigFileNotFound = errors.New("configuration file not found")
	ErrInvalidConfigYAML  = errors.New("invalid YAML syntax")
	ErrMissingShopBaseURL = errors.New("shop base URL is required")
	ErrMissingAPIVersion  = errors.New("API version is required")
)

// Config is the serializable shop configuration. Environment variables use
// the SHOPIFY_ prefix, e.g. SHOPIFY_SHOP_BASE_URL.
type Config struct {
	ShopBaseURL     string `envconfig:"SHOP_BASE_URL" yaml:"shop_base_url"`
	APIVersion      string `envconfig:"API_VERSION" yaml:"api_version" default:"2023-01"`
	StorefrontToken string `envconfig:"STOREFRONT_ACCESS_TOKEN" yaml:"storefront_access_token"`
	AdminToken      string `envconfig:"ADMIN_ACCESS_TOKEN" yaml:"admin_access_token"`
}

// Validate checks that the config can address a shop.
func (c *Config) Validate() error {
	if c.ShopBaseURL == "" {
		return ErrMissingShopBaseURL
	}
	if c.APIVersion == "" {
		return ErrMissingAPIVersion
	}
	return nil
}

// Context converts the config into a service Context.
func (c *Config) Context() *Context {
	return &Context{
		ShopBaseURL:     c.ShopBaseURL,
		APIVersion:      c.APIVersion,
		StorefrontToken: c.StorefrontToken,
		AdminToken:      c.AdminToken,
	}
}

// LoadConfig reads the config from the environment. A .env file in the
// working directory is applied first when present; a missing file is not an
// error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("shopify", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads the config from a YAML file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	ext := filepath.Ext(path)
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format %q, expected .yaml or .yml", ext)
	}

	cfg := Config{APIVersion: "2023-01"}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfigYAML, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
