package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	tree *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <input>...",
		Short: "Parse one or more inputs",
		Example: `  btparse parse '!a+b!' '!a*(b+a)!'
  btparse parse --grammar expr.grammar --tree '1 + 2 * 3'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
	parseFlags.tree = cmd.Flags().Bool("tree", false, "display the parse tree of accepted input")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(*rootFlags.grammar)
	if err != nil {
		return err
	}
	s, err := newSession(spec, *rootFlags.maxSteps, *rootFlags.oneBased)
	if err != nil {
		return err
	}
	rejected := 0
	for _, text := range args {
		o, err := s.parse(text)
		if err != nil {
			pterm.Error.Println(fmt.Sprintf("%s: %v", text, err))
			return err
		}
		s.report(o, *parseFlags.tree)
		if !o.result.Accepted {
			rejected++
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d inputs rejected", rejected, len(args))
	}
	return nil
}
