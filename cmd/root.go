package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/folio/internal/api"
	"github.com/joescharf/folio/internal/catalog"
	"github.com/joescharf/folio/internal/output"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui     *output.UI
	client *api.Client

	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Browse the Projétil portfolio catalog",
	Long: `folio is a terminal front-end for the Projétil portfolio catalog.
It lists published projects with pagination and filtering by business
segment, platform, and technology, and shows per-project detail with
an image carousel. Run 'folio browse' for the interactive view.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return rootRun(cmd)
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would happen without making changes")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/folio/config.yaml)")
}

func initConfig() {
	// If --config is explicitly set, use that file
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "folio")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FOLIO")
	viper.AutomaticEnv()

	// Defaults via viper.SetDefault()
	viper.SetDefault("url_api", "http://localhost:5252")
	viper.SetDefault("api_token", "")
	viper.SetDefault("page_size", catalog.DefaultPageSize)

	// The hosted catalog configures its clients through NEXT_PUBLIC_URL_API,
	// so honor it as a fallback alongside FOLIO_URL_API.
	_ = viper.BindEnv("url_api", "FOLIO_URL_API", "NEXT_PUBLIC_URL_API")

	// Read config file if it exists (optional)
	_ = viper.ReadInConfig()
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose
	ui.DryRun = dryRun

	// Initialize the API client lazily — only when commands actually need
	// it. This allows config/version commands to run without a base URL.
}

// rootRun handles `folio` with no subcommand: show the first listing page.
func rootRun(cmd *cobra.Command) error {
	if _, err := getClient(); err != nil {
		return cmd.Help()
	}
	return projectListRun()
}

// getClient returns the shared API client, initializing it on first call.
func getClient() (*api.Client, error) {
	if client != nil {
		return client, nil
	}

	baseURL := viper.GetString("url_api")
	if baseURL == "" {
		return nil, fmt.Errorf("url_api is not configured (set FOLIO_URL_API or run 'folio config init')")
	}

	client = api.New(baseURL, viper.GetString("api_token"))
	ui.VerboseLog("Using catalog API at %s", baseURL)
	return client, nil
}
