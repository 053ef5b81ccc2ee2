package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/checks"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/ignorelist"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/schema"
	"github.com/ioccc-tools/mkiocccentry-core/pkgs/validate"
)

func newValidateCmd() *cobra.Command {
	var kind string
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate <file.json>",
		Short: "Run the semantic validator (components G/H/I) against a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := schemaFor(kind)
			if err != nil {
				return newUsageError("%v", err)
			}

			list := ignorelist.New()
			for _, code := range ignores {
				list.Ignore(code)
			}

			path := args[0]
			code, runErr := validateOnce(path, sch, list)
			if runErr != nil {
				return runErr
			}
			if !watch {
				setExitCode(code)
				return nil
			}

			return watchAndValidate(path, sch, list)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "info", "schema to validate against: common, info, or author")
	cmd.Flags().IntSliceVar(&ignores, "ignore", nil, "diagnostic code to suppress (repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat any validation error as exit code 2")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-validate whenever the file changes on disk")

	return cmd
}

func schemaFor(kind string) (schema.Schema, error) {
	switch kind {
	case "common":
		return checks.CommonSchema, nil
	case "info":
		return checks.InfoSchema, nil
	case "author":
		return checks.AuthorSchema, nil
	default:
		return nil, fmt.Errorf("unknown schema kind %q (want common, info, or author)", kind)
	}
}

// validateOnce parses and validates path once, printing the result,
// and returns the exit code the run should report.
func validateOnce(path string, sch schema.Schema, list *ignorelist.List) (int, error) {
	src, err := readFile(path)
	if err != nil {
		return 0, err
	}

	root, err := jsontree.Parse(src)
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return ExitValidationFailed, nil
	}

	errs := validate.WalkWithIgnoreList(root, sch, list)
	for _, e := range errs {
		fmt.Printf("[%d] depth=%d %s: %s\n", e.Code, e.Depth, e.FunctionName, e.Message)
	}

	if validate.Valid(errs) {
		fmt.Println("OK")
		return ExitSuccess, nil
	}
	if strict {
		return ExitValidationStrict, nil
	}
	return ExitValidationFailed, nil
}

// watchAndValidate re-runs validateOnce on every write or create event
// on path, using
// fsnotify the way codenerd's shard pipeline watches its source tree.
// This is a CLI-level enrichment only; the CORE stays synchronous and
// performs no I/O of its own (spec §5).
func watchAndValidate(path string, sch schema.Schema, list *ignorelist.List) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	logger.Info("watching for changes", zap.String("path", path))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if _, err := validateOnce(path, sch, list); err != nil {
				logger.Error("validation run failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}
