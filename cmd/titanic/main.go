// Command titanic runs the Titanic survival analysis: descriptive statistics
// and charts over the passenger manifest, plus a logistic regression fit with
// its evaluation artifacts.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev" // set by the linker

var cfgFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	cobra.OnInitialize(initConfig)

	// Defaults apply when neither the config file, environment nor flags
	// set a value.
	viper.SetDefault("input", "data/train.csv")
	viper.SetDefault("output", "out")
	viper.SetDefault("seed", 42)
	viper.SetDefault("test-fraction", 0.2)
	viper.SetDefault("stratify", false)
	viper.SetDefault("learning-rate", 0.1)
	viper.SetDefault("epochs", 200)
	viper.SetDefault("batch-size", 32)
	viper.SetDefault("charts", true)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)

	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titanic",
		Short: "Survival analysis of the Titanic passenger manifest",
		Long: `Titanic loads the passenger manifest, cleans and encodes it, fits a
logistic regression predicting survival on a seeded train/validation
split, and writes the evaluation artifacts (metrics.json, confusion
matrix, ROC curve and descriptive charts) to the output directory.`,
	}

	cmd.AddCommand(analyzeCmd)
	cmd.AddCommand(summaryCmd)
	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./titanic.yaml)")
	cmd.PersistentFlags().String("input", "data/train.csv", "path to the passenger manifest CSV")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("input", cmd.PersistentFlags().Lookup("input"))
	_ = viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))

	return cmd
}

// initConfig reads the optional config file and TITANIC_* environment
// variables. Precedence: flags over env over file over defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("titanic")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("TITANIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
