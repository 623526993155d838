package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Rana718/saleor-seed/internal/config"
	"github.com/Rana718/saleor-seed/internal/seeder"
)

var (
	cfgFile  string
	onlyFlag []string
	skipFlag []string
	Version  = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔═══════════════════════════════════╗",
		"║   Saleor Default Structures Seed  ║",
		"╚═══════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "saleor-seed",
	Short: "Seed a Saleor store with baseline reference data",
	Long: `
saleor-seed creates the reference data a fresh Saleor store needs through
its GraphQL API, in dependency order:

  taxClasses, warehouses, channels, shipping, attributes, productTypes,
  categories, collections, pageTypes, pages, menus

Every section can be turned off in the dataset (enabled: false) or from the
command line with --only and --skip. Failed items are logged and the run
carries on.

Configuration (environment, .env, or ./saleor-seed.yaml):
  SALEOR_API_URL     GraphQL endpoint, ending in /graphql/ (required)
  SALEOR_APP_TOKEN   app token; or SALEOR_EMAIL + SALEOR_PASSWORD
  SALEOR_SEED_FILE   YAML dataset laid over the built-in defaults
  SALEOR_TIMEOUT     HTTP timeout, e.g. 30s`,
	Example: `  saleor-seed
  saleor-seed --only=channels,shipping
  saleor-seed --skip=menus --skip=pages`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("saleor-seed version %s\n", Version)
			return nil
		}

		showBanner()
		return runSeed(cmd.Context(), selectionFromFlags(cmd))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./saleor-seed.yaml)")
	bindSelectionFlags(rootCmd.Flags())
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	config.Setup(viper.GetViper())
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			color.Yellow("⚠️  Could not read config file: %v", err)
		}
	}
}

func bindSelectionFlags(fs *pflag.FlagSet) {
	fs.StringArrayVar(&onlyFlag, "only", nil, "comma-separated sections to run, replacing the dataset's enabled flags (last one wins)")
	fs.StringArrayVar(&skipFlag, "skip", nil, "comma-separated sections to leave out (repeatable)")
}

// selectionFromFlags takes the last non-empty --only; a bare --only= is
// ignored, and without one Only stays nil so the dataset's enabled flags
// apply.
func selectionFromFlags(cmd *cobra.Command) seeder.Selection {
	var sel seeder.Selection
	for _, value := range onlyFlag {
		if value != "" {
			sel.Only = splitList(value)
		}
	}
	for _, value := range skipFlag {
		sel.Skip = append(sel.Skip, splitList(value)...)
	}
	return sel
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
