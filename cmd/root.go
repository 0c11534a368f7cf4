package cmd

import (
	"fmt"
	"os"

	"github.com/hungryops/lunchpick/internal/utils"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	 _                  _           _      _
	| |_   _ _ __   ___| |__  _ __ (_) ___| | __
	| | | | | '_ \ / __| '_ \| '_ \| |/ __| |/ /
	| | |_| | | | | (__| | | | |_) | | (__|   <
	|_|\__,_|_| |_|\___|_| |_| .__/|_|\___|_|\_\
	                         |_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lunchpick",
	Short: "A weighted lunch roulette for indecisive teams.",
	Long: LOGO + `lunchpick keeps a shared list of lunch candidates and picks one at random,
honoring per-item weights, a budget ceiling, excluded tags, and a
"don't repeat what we just ate" window.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lunchpick.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("db", "", "", "Path to the state database (default is $HOME/.config/lunchpick/lunchpick.sqlite)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".lunchpick")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.lunchpick.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default values for all keys
	viper.SetDefault("db.path", "")
	viper.SetDefault("constraints.budget", "")
	viper.SetDefault("constraints.excluded_tags", "")
	viper.SetDefault("constraints.avoid_recent", false)
	viper.SetDefault("constraints.window_days", 7)
	viper.SetDefault("serve.listen", ":8080")
	viper.SetDefault("serve.username", "")
	viper.SetDefault("serve.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
