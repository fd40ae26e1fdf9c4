package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	axisnetcam "github.com/openminds/axis-netcam"
)

var cfgFile string

// Connection flags, overridable by config file and AXIS_* env vars.
var (
	flagHost string
	flagUser string
	flagPass string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "axisctl",
	Short: "Control an Axis network camera over its CGI API",
	Long: `Drive pan/tilt/zoom, manage accounts, grab snapshots and read
diagnostics from an Axis network camera.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.axisctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "camera hostname or host:port")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "camera username")
	rootCmd.PersistentFlags().StringVar(&flagPass, "pass", "", "camera password")

	_ = viper.BindPFlag("hostname", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("user"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("pass"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".axisctl")
	}

	viper.SetEnvPrefix("axis")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// newCamera builds a session from the resolved flag/config/env values.
func newCamera() (*axisnetcam.Camera, error) {
	return axisnetcam.NewCamera(axisnetcam.Config{
		Hostname: viper.GetString("hostname"),
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
	})
}
