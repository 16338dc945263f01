package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/npillmayer/nondet/lr/backtrack"
)

// tracer traces with key 'backtrack.cli'.
func tracer() tracing.Trace {
	return tracing.Select("backtrack.cli")
}

var rootFlags = struct {
	grammar  *string
	trace    *string
	maxSteps *int
	oneBased *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "btparse",
	Short: "Parse input with a backtracking shift-reduce parser",
	Long: `btparse checks input against a context-free grammar with a shift-reduce
parser which explores alternative reductions by backtracking. For accepted
input it reports a bottom-up derivation: the numbers of the rules applied,
in order of reduction.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initTracing(*rootFlags.trace)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	rootFlags.grammar = flags.StringP("grammar", "g", "", "grammar file path (default: sample grammar)")
	rootFlags.trace = flags.StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	rootFlags.maxSteps = flags.Int("max-steps", backtrack.DefaultMaxSteps, "maximum number of parser steps per input, 0 for no limit")
	rootFlags.oneBased = flags.Bool("one-based", false, "number rules starting with 1")
}

// Execute runs the command selected by the command line arguments.
func Execute() error {
	return rootCmd.Execute()
}

var traceKeys = []string{"backtrack.cli", "backtrack.lr", "backtrack.scanner"}

// initTracing installs a Go-logger based tracer for all trace keys.
func initTracing(level string) {
	l := tracing.TraceLevelFromString(level)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("trace level is %s", level)
}
