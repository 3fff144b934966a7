package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/storefrontkit/checkout/pkg/logging"
	"github.com/storefrontkit/checkout/pkg/mockapi"
	"github.com/storefrontkit/checkout/pkg/storefront"
	"github.com/storefrontkit/checkout/pkg/types"
)

var (
	// Persistent flags available to all subcommands
	configPath  string
	countryCode string
	mockMode    bool
	jsonOutput  bool
	logLevel    string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "checkout",
	Short: "checkout drives Shopify Storefront carts from the command line",
	Long: `checkout manages shopping carts and pre-order selling plan groups against
the Shopify Storefront and admin GraphQL APIs.

Shop credentials come from SHOPIFY_* environment variables (a .env file in
the working directory is honored) or from a YAML file passed with --config.
With --mock every command runs against an in-process backend instead of a
real shop, which needs no credentials.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML shop configuration file")
	rootCmd.PersistentFlags().StringVar(&countryCode, "country", types.DefaultMarket, "Market country code used for pricing")
	rootCmd.PersistentFlags().BoolVar(&mockMode, "mock", false, "Run against the in-process mock backend instead of a real shop")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func newLogger() *slog.Logger {
	return logging.NewWithLevel(logging.ParseLevel(logLevel))
}

// loadShopContext resolves the shop coordinates. Mock mode needs none.
func loadShopContext() (*storefront.Context, error) {
	if mockMode {
		return storefront.NewContext(mockapi.DefaultShopBaseURL, "2023-01"), nil
	}

	if configPath != "" {
		cfg, err := storefront.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.Context(), nil
	}

	cfg, err := storefront.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("%w (set SHOPIFY_* variables or pass --config)", err)
	}
	return cfg.Context(), nil
}

// mockRouter is shared across services so cart and selling plan commands in
// one invocation see the same backend state.
var mockRouter *mockapi.Router

func clientOptions() []storefront.ClientOption {
	opts := []storefront.ClientOption{storefront.WithLogger(newLogger())}
	if mockMode {
		if mockRouter == nil {
			// The cart factory lets --cart reference ids the ephemeral
			// backend has never seen.
			mockRouter = mockapi.NewRouter(mockapi.NewBackend(), mockapi.WithCartFactory())
		}
		opts = append(opts, storefront.WithMockRouter(mockRouter))
	}
	return opts
}

func newCartService() (*storefront.CartService, error) {
	shopCtx, err := loadShopContext()
	if err != nil {
		return nil, err
	}
	return storefront.NewCartService(shopCtx, clientOptions(),
		storefront.WithCartServiceLogger(newLogger())), nil
}

func newSellingPlanGroupService() (*storefront.SellingPlanGroupService, error) {
	shopCtx, err := loadShopContext()
	if err != nil {
		return nil, err
	}
	return storefront.NewSellingPlanGroupService(shopCtx, clientOptions(),
		storefront.WithSellingPlanGroupServiceLogger(newLogger())), nil
}
