package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ioccc-tools/mkiocccentry-core/pkgs/jsontree"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file.json>",
		Short: "Run the JSON parser (component D) over a JSON document and print its shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readFile(args[0])
			if err != nil {
				return err
			}

			node, err := jsontree.Parse(src)
			if err != nil {
				logger.Debug("parse failed", zap.Error(err))
				fmt.Println(err.Error())
				setExitCode(ExitValidationFailed)
				return nil
			}

			printNode(node, 0)
			setExitCode(ExitSuccess)
			return nil
		},
	}
}

func printNode(n *jsontree.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	switch n.Kind {
	case jsontree.KindObject:
		fmt.Printf("%sObject (%d members)\n", pad, len(n.Members))
		for _, m := range n.Members {
			fmt.Printf("%s  %s:\n", pad, m.MemberName.Lexeme)
			printNode(m.MemberValue, indent+2)
		}
	case jsontree.KindArray:
		fmt.Printf("%sArray (%d items)\n", pad, len(n.Items))
		for _, item := range n.Items {
			printNode(item, indent+1)
		}
	case jsontree.KindString:
		fmt.Printf("%sString %q (converted=%t)\n", pad, n.String.Decoded, n.Converted)
	case jsontree.KindNumber:
		fmt.Printf("%sNumber %s (converted=%t)\n", pad, n.Number.AsStr, n.Converted)
	case jsontree.KindBool:
		fmt.Printf("%sBool %t\n", pad, n.Bool)
	case jsontree.KindNull:
		fmt.Printf("%sNull\n", pad)
	}
}
