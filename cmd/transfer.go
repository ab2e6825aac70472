package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ddr/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errTooManyArgs = errors.New("too many arguments (to pass flags to dd, use `--`)")

var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// TransferFlags holds flags read directly by the command. Everything else
// is bound to viper and reaches the code through config.Config.
type TransferFlags struct {
	Version bool
}

var transferFlags TransferFlags

func bindTransferFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&transferFlags.Version, "version", false, "print ddr and dd versions and exit")
	flags.String("dd-path", "dd", "dd executable to run")
	flags.Duration("grace-period", time.Second, "how long dd may take to fail before the live display starts")
	flags.String("style", "live", "progress display: live or bar")
	flags.Int("lines", 5, "number of recent dd messages kept under the progress readout")
	flags.String("color", "auto", "colour output: auto, always or never")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	// Bind flags to viper so config files and DDR_* variables fill in unset flags
	viper.BindPFlag("dd.path", flags.Lookup("dd-path"))
	viper.BindPFlag("dd.grace_period", flags.Lookup("grace-period"))
	viper.BindPFlag("display.style", flags.Lookup("style"))
	viper.BindPFlag("display.diagnostic_lines", flags.Lookup("lines"))
	viper.BindPFlag("display.color", flags.Lookup("color"))
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
}

// parseTransferArgs splits positional arguments into source, destination
// and dd pass-through flags. dashAt is the number of arguments before "--",
// or -1 when there was no "--".
func parseTransferArgs(args []string, dashAt int) (*app.TransferOptions, error) {
	positional := args
	var extra []string
	if dashAt >= 0 {
		positional, extra = args[:dashAt], args[dashAt:]
	}

	if len(positional) < 2 {
		return nil, fmt.Errorf("expected at least 2 arguments, got %d", len(positional))
	}
	if len(positional) > 2 {
		return nil, errTooManyArgs
	}

	return &app.TransferOptions{
		Source:      positional[0],
		Destination: positional[1],
		ExtraArgs:   extra,
	}, nil
}
