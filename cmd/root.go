package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tanglefoot/multimatch/cmd/build"
	"github.com/tanglefoot/multimatch/cmd/scan"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "multimatch",
	Short: "multimatch finds keywords for you",
	Long: `multimatch scans text for many keywords at once in a single pass,
reporting every occurrence including overlapping ones.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func addSubCommandPalettes() {
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(build.BuildCmd)
}

func init() {
	cobra.OnInitialize(initConfig)

	addSubCommandPalettes()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.multimatch.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".multimatch")
	}

	viper.SetEnvPrefix("multimatch")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
