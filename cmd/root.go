package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"ddr/internal/app"
	"ddr/internal/config"
	"ddr/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time with -ldflags "-X ddr/cmd.Version=..."
var Version = "0.1.0"

var (
	cfg      *config.Config
	logger   *slog.Logger
	cfgFile  string
	exitCode int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ddr <source> <destination> [-- <dd flags>...]",
	Short: "ddr - dd with a readable progress display",
	Long: `ddr copies <source> to <destination> with dd and shows a live progress
readout: bytes copied, percentage of the source size, elapsed time and
throughput. The last few other messages dd prints stay visible beneath it.

Anything after "--" is handed to dd unchanged:

  ddr disk.img /dev/sdb -- bs=4M conv=fsync

The exit status is dd's own.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize viper configuration
		initConfig()

		var err error
		cfg, err = config.Load(viper.GetViper())
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		logger = logging.Init(cfg.Log, os.Stderr)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		transferApp := app.NewTransferApp(cfg, logger, cmd.OutOrStdout())

		if transferFlags.Version {
			out, err := transferApp.Version(ctx, Version)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}

		opts, err := parseTransferArgs(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
		}
		exitCode, err = transferApp.Run(ctx, opts)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ddr.yaml)")

	bindTransferFlags(rootCmd)

	// Set up viper environment variable support
	viper.SetEnvPrefix("DDR")
	viper.AutomaticEnv()
}

// initConfig reads in config file, .env and ENV variables
func initConfig() {
	// .env values land in the process environment, below real variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not read .env file", "error", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Warn("Could not find home directory", "error", err)
			return
		}

		// Search config in home directory with name ".ddr" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ddr")
	}

	// Nested keys such as dd.path map to DDR_DD_PATH
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}

// Execute runs the root command and exits with dd's status, or 1 on error
func Execute() {
	os.Exit(run())
}

// run executes the root command and returns the process exit status
func run() int {
	exitCode = 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
		return 1
	}
	return exitCode
}
