package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "lookbook"
)

type Config struct {
	WardrobeFile string         `mapstructure:"wardrobe-file"`
	FeedbackFile string         `mapstructure:"feedback-file"`
	Suggest      *SuggestConfig `mapstructure:"suggest"`
	Exclude      *struct {
		Categories []string
	} `mapstructure:"exclude"`
}

type SuggestConfig struct {
	Count    int      `mapstructure:"count"`
	Occasion string   `mapstructure:"occasion"`
	Weather  string   `mapstructure:"weather"`
	Require  []string `mapstructure:"require"`
	// DelayMs defers the suggestion output briefly. Purely cosmetic.
	DelayMs int `mapstructure:"delay-ms"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "lookbook is a simple cli for managing a clothing inventory and suggesting outfits from it",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("wardrobe-file", "LOOKBOOK_WARDROBE_FILE"); err != nil {
		log.Fatalf("binding LOOKBOOK_WARDROBE_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("feedback-file", "LOOKBOOK_FEEDBACK_FILE"); err != nil {
		log.Fatalf("binding LOOKBOOK_FEEDBACK_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is lookbook.yaml in current directory)")
	rootCmd.PersistentFlags().StringP("wardrobe-file", "w", "", "wardrobe file (json or yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("wardrobe-file", rootCmd.PersistentFlags().Lookup("wardrobe-file"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("wardrobe-file", "wardrobe.json")
	viper.SetDefault("feedback-file", "feedback.json")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional: flags and defaults cover everything.
	// A file that exists but does not parse is still fatal.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
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

	if config == nil {
		config = &Config{}
	}
	if config.Suggest == nil {
		config.Suggest = &SuggestConfig{}
	}

	return config, nil
}
