package storefront

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfigFile(t, "shop.yaml", `
shop_base_url: whiskey-barrel-club.myshopify.com
api_version: "2023-04"
storefront_access_token: sf-token
admin_access_token: admin-token
`)

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "whiskey-barrel-club.myshopify.com", cfg.ShopBaseURL)
		assert.Equal(t, "2023-04", cfg.APIVersion)
		assert.Equal(t, "sf-token", cfg.StorefrontToken)
		assert.Equal(t, "admin-token", cfg.AdminToken)
	})

	t.Run("api version defaults", func(t *testing.T) {
		path := writeConfigFile(t, "shop.yml", "shop_base_url: shop.myshopify.com\n")

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "2023-01", cfg.APIVersion)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, ErrConfigFileNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeConfigFile(t, "shop.json", `{"shop_base_url": "shop"}`)

		_, err := LoadConfigFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config format")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfigFile(t, "shop.yaml", "shop_base_url: [unterminated\n")

		_, err := LoadConfigFile(path)
		require.ErrorIs(t, err, ErrInvalidConfigYAML)
	})

	t.Run("missing shop base url", func(t *testing.T) {
		path := writeConfigFile(t, "shop.yaml", "storefront_access_token: sf-token\n")

		_, err := LoadConfigFile(path)
		require.ErrorIs(t, err, ErrMissingShopBaseURL)
	})
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SHOPIFY_SHOP_BASE_URL", "shop.myshopify.com")
	t.Setenv("SHOPIFY_STOREFRONT_ACCESS_TOKEN", "sf-token")
	t.Setenv("SHOPIFY_ADMIN_ACCESS_TOKEN", "admin-token")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "shop.myshopify.com", cfg.ShopBaseURL)
	assert.Equal(t, "2023-01", cfg.APIVersion)
	assert.Equal(t, "sf-token", cfg.StorefrontToken)
	assert.Equal(t, "admin-token", cfg.AdminToken)
}

func TestLoadConfigMissingShopBaseURL(t *testing.T) {
	t.Setenv("SHOPIFY_SHOP_BASE_URL", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingShopBaseURL)
}

func TestConfigContext(t *testing.T) {
	cfg := &Config{
		ShopBaseURL:     "shop.myshopify.com",
		APIVersion:      "2023-01",
		StorefrontToken: "sf-token",
		AdminToken:      "admin-token",
	}

	shopCtx := cfg.Context()
	assert.Equal(t, cfg.ShopBaseURL, shopCtx.ShopBaseURL)
	assert.Equal(t, cfg.APIVersion, shopCtx.APIVersion)
	assert.Equal(t, cfg.StorefrontToken, shopCtx.StorefrontToken)
	assert.Equal(t, cfg.AdminToken, shopCtx.AdminToken)
}
