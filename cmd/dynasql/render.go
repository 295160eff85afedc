package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dynasql/dynasql"
	"github.com/dynasql/dynasql/driver"
	"github.com/dynasql/dynasql/expr"
	"github.com/dynasql/dynasql/node"
	"github.com/dynasql/dynasql/value"
)

func newRenderCmd() *cobra.Command {
	var style string
	var argsJSON string

	cmd := &cobra.Command{
		Use:   "render <template-file>",
		Short: "Compile a template file and emit it against an argument map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			translator, err := translatorForStyle(style)
			if err != nil {
				return err
			}

			src, err := os.ReadFile(argv[0])
			if err != nil {
				return fmt.Errorf("reading template: %w", err)
			}

			tpl, err := dynasql.Compile(string(src))
			if err != nil {
				return fmt.Errorf("compiling template: %w", err)
			}

			args := map[string]any{}
			if argsJSON != "" {
				if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
					return fmt.Errorf("parsing --args: %w", err)
				}
			}

			ctx := &node.Context{
				Translator: translator,
				Scope:      expr.NewScope(value.Of(args)),
				Registry:   tpl,
			}
			query, params, err := tpl.Nodes().Accept(ctx)
			if err != nil {
				return fmt.Errorf("emitting template: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), query)
			for i, p := range params {
				fmt.Fprintf(cmd.OutOrStdout(), "  $%d = %v\n", i+1, p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "question", "placeholder style: question, dollar, or colon")
	cmd.Flags().StringVar(&argsJSON, "args", "", "JSON object bound as the root argument map")
	return cmd
}

func translatorForStyle(style string) (driver.Translator, error) {
	switch style {
	case "question":
		return driver.QuestionTranslator, nil
	case "dollar":
		return driver.DollarTranslator, nil
	case "colon":
		return driver.ColonTranslator, nil
	default:
		return nil, fmt.Errorf("unknown --style %q (want question, dollar, or colon)", style)
	}
}
