package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"recruit-assist/internal/logger"
	"recruit-assist/internal/recruit"
	"recruit-assist/internal/store"
)

const (
	app = "recruit-assist"

	defaultDataDir = "config"
)

type Config struct {
	DataDir string    `mapstructure:"data-dir"`
	AI      *AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "recruit-assist screens resume files against job requirements and prepares interview plans",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("data-dir", defaultDataDir, "directory with the company profile and job requirement documents")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// The default config file is optional: every command works with
	// flags and environment variables alone.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func newStore(logger *zap.Logger) *store.Store {
	dir := viper.GetString("data-dir")
	if strings.TrimSpace(dir) == "" {
		dir = defaultDataDir
	}
	return store.New(dir, logger)
}

// resolveGeminiKey loads the API key from the configured key file. The file
// path can come from the config file or the GEMINI_API_KEY_FILE variable.
func resolveGeminiKey(config *Config) (string, error) {
	keyFile := ""
	if config != nil && config.AI != nil && config.AI.Gemini != nil {
		keyFile = strings.TrimSpace(config.AI.Gemini.APIKeyFile)
	}
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}
	if keyFile == "" {
		return "", fmt.Errorf("gemini api key file is not configured")
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("reading gemini api key from file %q: %w", keyFile, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("gemini api key file %q is empty", keyFile)
	}

	return key, nil
}

// selectJob resolves the position either from the --job flag or by an
// interactive selection over the catalog titles.
func selectJob(jobs *recruit.JobRequirements, title string, logger *zap.Logger) (*recruit.JobRequirement, error) {
	if jobs.Len() == 0 {
		return nil, fmt.Errorf("no job requirements configured, run %q first", app+" setup job")
	}

	if title != "" {
		job := jobs.FindByTitle(title)
		if job == nil {
			logger.Error("job with given title not found",
				zap.Any("existing job titles", jobs.Titles()),
				zap.String("job title", title),
			)
			return nil, fmt.Errorf("job requirement %q not found", title)
		}
		return job, nil
	}

	jobPrompt := promptui.Select{
		Label: "Choose a position and press ENTER",
		Items: jobs.Titles(),
	}

	_, selected, err := jobPrompt.Run()
	if err != nil {
		return nil, err
	}

	return jobs.FindByTitle(selected), nil
}
