package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse inputs interactively",
		Long: `repl reads inputs line by line and parses each of them. Lines starting
with a colon are commands; enter :help for a list.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	initDisplay()
	spec, err := loadSpec(*rootFlags.grammar)
	if err != nil {
		return err
	}
	s, err := newSession(spec, *rootFlags.maxSteps, *rootFlags.oneBased)
	if err != nil {
		return err
	}
	repl, err := readline.New("btparse> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println(fmt.Sprintf("Welcome to btparse, grammar is %s", s.G.Name))
	tracer().Infof("Quit with <ctrl>D")
	intp := &Intp{session: s, repl: repl}
	intp.REPL()
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object.
type Intp struct {
	session *session
	repl    *readline.Instance
	tree    bool // display parse trees
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval parses an input line or executes a command.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		o, err := intp.session.parse(line)
		if err != nil {
			return false, err
		}
		intp.session.report(o, intp.tree)
		return false, nil
	}
	args := strings.Fields(line[1:])
	if len(args) == 0 {
		return false, fmt.Errorf("missing command after ':'")
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "help", "h":
		printHelp()
	case "grammar", "g":
		intp.session.printGrammar()
	case "tree":
		intp.tree = !intp.tree
		pterm.Info.Println(fmt.Sprintf("tree display is %s", onoff(intp.tree)))
	case "one-based":
		intp.session.oneBased = !intp.session.oneBased
		pterm.Info.Println(fmt.Sprintf("1-based rule numbers are %s", onoff(intp.session.oneBased)))
	case "trace":
		if len(args) != 2 {
			return false, fmt.Errorf(":trace expects a level [Debug|Info|Error]")
		}
		initTracing(args[1])
		pterm.Info.Println(fmt.Sprintf("trace level is %s", args[1]))
	default:
		return false, fmt.Errorf("unknown command :%s", args[0])
	}
	return false, nil
}

func printHelp() {
	fmt.Println(`  <input>        parse input
  :tree          toggle display of parse trees
  :one-based     toggle 1-based rule numbers
  :grammar       show the grammar
  :trace <level> set trace level [Debug|Info|Error]
  :quit          quit (or <ctrl>D)`)
}

func onoff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
