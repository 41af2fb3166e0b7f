// cmd/bcnum/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"bcnum/internal/calc"
	"bcnum/internal/env"
	"bcnum/internal/num"
	"bcnum/internal/store"
)

// Build variables, settable via -ldflags at release time.
var (
	BuildDate = time.Now().Format("2006-01-02")
	GitCommit = "unknown"
)

// commandAliases maps short letters to full subcommand names, a flat
// alias table dispatching to this domain's three verbs.
var commandAliases = map[string]string{
	"e": "eval",
	"r": "repl",
	"h": "hist",
}

func main() {
	os.Exit(bcnumMain())
}

// bcnumMain holds the real entry point as a func() int so it can be
// registered as the "bcnum" command inside testscript's in-process
// harness (main_test.go), rather than only runnable as a real process.
func bcnumMain() int {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		return 1
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "-v", "version":
		showVersion()
	case "eval":
		runEval(args[1:])
	case "repl":
		runREPL(args[1:])
	case "hist":
		runHist(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "bcnum: unknown command %q\n\n", args[0])
		showUsage()
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println("bcnum - arbitrary-precision decimal calculator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bcnum eval [-scale N] [-base N] [-debug] '<expr>'     (alias: e)")
	fmt.Println("  bcnum repl [-base N] [-db PATH] [-debug]              (alias: r)")
	fmt.Println("  bcnum hist [-session ID] [-db PATH]                   (alias: h)")
	fmt.Println("  bcnum --version")
}

func showVersion() {
	fmt.Printf("bcnum (build %s, commit %s)\n", BuildDate, GitCommit)
}

func defaultDBPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "bcnum.db"
	}
	return filepath.Join(dir, ".bcnum.db")
}

// reportErr prints err either as a bare status (the common case) or,
// under -debug, the full wrapped cause chain via pkg/errors' %+v.
func reportErr(err error, debug bool) {
	if debug {
		fmt.Fprintf(os.Stderr, "bcnum: %+v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "bcnum: %v\n", err)
}

func runEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	scale := fs.Int("scale", 10, "result scale (fractional digits)")
	base := fs.Int("base", 10, "input literal base")
	debug := fs.Bool("debug", false, "print full error chain on failure")
	dbPath := fs.String("db", defaultDBPath(), "register database path")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "bcnum eval: expression required")
		os.Exit(1)
	}
	expr := fs.Arg(0)

	st, err := store.Open(*dbPath)
	if err != nil {
		reportErr(err, *debug)
		os.Exit(1)
	}
	defer st.Close()

	e := env.New(func(c byte) { os.Stdout.Write([]byte{c}) }, env.DefaultLineLen)
	e.WatchInterrupts()
	defer e.Stop()

	result, err := calc.EvalString(expr, calc.Context{
		Scale: *scale,
		Base:  *base,
		Regs:  st,
		Sig:   e,
	})
	if err != nil {
		reportErr(err, *debug)
		os.Exit(1)
	}

	num.Print(result, e, 10, true, e)
}

func runREPL(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	base := fs.Int("base", 10, "input literal base")
	debug := fs.Bool("debug", false, "print full error chain on failure")
	dbPath := fs.String("db", defaultDBPath(), "register database path")
	fs.Parse(args)

	st, err := store.Open(*dbPath)
	if err != nil {
		reportErr(err, *debug)
		os.Exit(1)
	}
	defer st.Close()

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	lineLen := env.DefaultLineLen
	if !interactive {
		lineLen = 0 // env.New maps 0 to DefaultLineLen, so this still wraps at 70
	}
	e := env.New(func(c byte) { os.Stdout.Write([]byte{c}) }, lineLen)
	e.WatchInterrupts()
	defer e.Stop()

	session := store.NewSessionID()
	scale := 10

	if interactive {
		fmt.Println("bcnum REPL | type 'quit' to exit")
	}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print(">>> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "quit" || line == "exit" {
			break
		}
		if line == "" {
			continue
		}
		e.Reset()

		result, err := calc.EvalString(line, calc.Context{
			Scale: scale,
			Base:  *base,
			Regs:  st,
			Sig:   e,
		})
		if err != nil {
			reportErr(err, *debug)
			st.AppendHistory(context.Background(), session, line, err.Error())
			continue
		}

		num.Print(result, e, 10, true, e)
		st.AppendHistory(context.Background(), session, line, result.String())
	}
}

func runHist(args []string) {
	fs := flag.NewFlagSet("hist", flag.ExitOnError)
	session := fs.String("session", "", "limit to one session ID")
	dbPath := fs.String("db", defaultDBPath(), "register database path")
	fs.Parse(args)

	st, err := store.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcnum: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	entries, err := st.History(context.Background(), *session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcnum: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("no history recorded")
		return
	}
	for _, e := range entries {
		fmt.Printf("[%s] %s => %s  (%s ago)\n",
			e.SessionID[:8], e.Input, e.Output, humanize.Time(e.CreatedAt))
	}
}
