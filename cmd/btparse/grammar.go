package main

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "grammar",
		Short:   "Show the rules of a grammar",
		Example: `  btparse grammar --grammar expr.grammar --one-based`,
		Args:    cobra.NoArgs,
		RunE:    runGrammar,
	}
	rootCmd.AddCommand(cmd)
}

func runGrammar(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(*rootFlags.grammar)
	if err != nil {
		return err
	}
	s, err := newSession(spec, *rootFlags.maxSteps, *rootFlags.oneBased)
	if err != nil {
		return err
	}
	s.printGrammar()
	return nil
}
