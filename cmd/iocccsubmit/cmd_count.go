package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/rulecount"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <source.c>",
		Short: "Run the rule counter (component B) over a C source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readFile(args[0])
			if err != nil {
				return err
			}

			metrics := rulecount.Count(src)
			logger.Debug("counted source", zap.Int64("rule_2a_size", metrics.Rule2aSize), zap.Int64("rule_2b_size", metrics.Rule2bSize))

			fmt.Printf("rule_2a_size: %d\n", metrics.Rule2aSize)
			fmt.Printf("rule_2b_size: %d\n", metrics.Rule2bSize)
			fmt.Printf("char_warning: %t\n", metrics.CharWarning)
			fmt.Printf("nul_warning: %t\n", metrics.NULWarning)
			fmt.Printf("trigraph_warning: %t\n", metrics.TrigraphWarning)
			fmt.Printf("wordbuf_warning: %t\n", metrics.WordbufWarning)
			fmt.Printf("ungetc_warning: %t\n", metrics.UngetcWarning)

			setExitCode(ExitSuccess)
			return nil
		},
	}
}
