package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "harmonic-analysis"
	envPrefix = "HARMONIC_ANALYSIS"
)

var (
	configFile   string
	verbose      bool
	logLevel     string
	outputFormat string
	projectRoot  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Synthetic signal harmonic analysis pipeline",
	Long: `Generate a noisy multi-harmonic signal, recover its dominant frequency
components with a discrete Fourier transform, and plot the original data
against the harmonic reconstruction.

Pipeline stages:
- synthesize: sum of unit sinusoids plus Poisson noise, written as X,Y CSV
- analyze:    one-sided amplitude spectrum and the five strongest components
- visualize:  reconstruction from the components, saved as <name>_harmonic.pdf`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.config/harmonic-analysis/harmonic-analysis.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", "",
		"directory the output/ folder is created under (default is the working directory)")

	// Output and logging flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		"output format (json, table, csv, yaml)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("project_root", rootCmd.PersistentFlags().Lookup("project-root"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		// Search config in home directory and ./configs
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", appName))
		}
		viper.AddConfigPath("./configs")
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
	}

	// Environment variable support
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// initializeConfig initializes configuration after flags are parsed
func initializeConfig(cmd *cobra.Command) error {
	// Bind all flags to viper
	return bindFlags(cmd, viper.GetViper())
}

// bindFlags applies config values to unset flags and binds each flag to its
// environment variable
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variable name
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			if val, ok := flagValue(v.Get(f.Name)); ok {
				if err := cmd.Flags().Set(f.Name, val); err != nil {
					lastErr = err
				}
			}
		}

		// Bind to environment variable
		if err := v.BindEnv(f.Name, envPrefix+"_"+envVarSuffix); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

// flagValue renders a config value the way pflag parses it back. Slices
// become comma separated lists; config sections are not flag values.
func flagValue(val any) (string, bool) {
	switch t := val.(type) {
	case map[string]any:
		return "", false
	case []any:
		parts := make([]string, len(t))
		for i, p := range t {
			parts[i] = fmt.Sprintf("%v", p)
		}
		return strings.Join(parts, ","), true
	case []float64:
		parts := make([]string, len(t))
		for i, p := range t {
			parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}

// GetConfig returns the current viper instance
func GetConfig() *viper.Viper {
	return viper.GetViper()
}
