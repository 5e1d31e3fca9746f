package cli

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/claimpilot/fnolagent/internal/logging"
	"github.com/claimpilot/fnolagent/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fnolagent",
	Short: "FNOL Agent - First Notice of Loss claims intake automation",
	Long: `FNOL Agent automates the intake of First Notice of Loss documents.

It extracts structured claim fields from uploaded PDF and text documents,
validates them for completeness and consistency, and routes each claim to
the appropriate handling queue with a transparent reasoning trail.

Extraction runs on a deterministic rule engine for ACORD-style forms, with
an optional LLM strategy for free-form documents. All monetary amounts are
treated as Indian Rupees (INR).`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for FNOL Agent.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fnolagent v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.fnolagent/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.fnolagent")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match FNOLAGENT_*
	viper.SetEnvPrefix("FNOLAGENT")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the agent configuration: defaults, then config file
// values, then environment. CLI flags are applied afterwards per command.
func loadConfig() *Config {
	cfg := model.DefaultConfig()

	if viper.ConfigFileUsed() != "" {
		// Config file keys follow the yaml tags on model.Config
		decodeYAML := func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" }
		if err := viper.Unmarshal(cfg, decodeYAML); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not apply config file: %v\n", err)
		}
	}

	if level := viper.GetString("log.level"); level != "" {
		cfg.Log.Level = level
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	return &Config{Config: cfg}
}

// Config wraps the model config with CLI-side setup helpers
type Config struct {
	*model.Config
}

// applyLLM enables the LLM extraction strategy from flags and environment
func (c *Config) applyLLM(provider, modelName string) error {
	if provider == "" {
		return nil
	}
	c.LLM.Provider = provider
	if modelName != "" {
		c.LLM.Model = modelName
	}

	switch provider {
	case "openai":
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if c.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			c.LLM.BaseURL = baseURL
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s (supported: openai)", provider)
	}
	return nil
}

// initLogging configures slog from the effective config
func (c *Config) initLogging() {
	logging.Init(c.Log.Level, c.Log.Format)
}
