// Command iocccsubmit is the thin CLI driver (component L) around the
// CORE: it reads files from disk, hands their bytes to the rule
// counter, JSON parser, and semantic validator, and prints the
// results. It does not stage files, build an archive, or invoke an
// external archiver — those remain component K's external
// responsibility (spec §1 Non-goals).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ioccerrors "github.com/ioccc-tools/mkiocccentry-core/pkgs/errors"
)

// Exit code contract (§6).
const (
	ExitSuccess          = 0
	ExitValidationFailed = 1
	ExitValidationStrict = 2
	ExitHelpOrVersion    = 3
	ExitUsageError       = 4
	ExitInternalError    = 5
)

const version = "1.0 2024-01-01"

var (
	logger  *zap.Logger
	debug   bool
	strict  bool
	ignores []int
)

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool

	root := &cobra.Command{
		Use:           "iocccsubmit",
		Short:         "Measure, parse, and validate an IOCCC contest submission",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if debug {
				cfg = zap.NewDevelopmentConfig()
				cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println(version)
				cmd.SilenceUsage = true
				os.Exit(ExitHelpOrVersion)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	root.Flags().BoolVarP(&showVersion, "version", "V", false, "print version and exit")

	root.AddCommand(newCountCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		if isUsageError(err) {
			return ExitUsageError
		}
		return ExitInternalError
	}

	if logger != nil {
		_ = logger.Sync()
	}
	return pendingExitCode
}

// pendingExitCode lets a subcommand's RunE communicate a non-zero,
// non-error exit code (e.g. "validation failed") back to main without
// cobra treating it as a command execution failure.
var pendingExitCode = ExitSuccess

func setExitCode(code int) {
	pendingExitCode = code
}

type usageError struct{ error }

func isUsageError(err error) bool {
	_, ok := err.(usageError)
	return ok
}

func newUsageError(format string, args ...interface{}) error {
	return usageError{fmt.Errorf(format, args...)}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioccerrors.NewInputError(fmt.Sprintf("reading %s", path), err)
	}
	return data, nil
}
