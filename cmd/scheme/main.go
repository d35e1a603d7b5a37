// Command scheme evaluates s-expressions from the command line, a file or an
// interactive prompt.
//
//	scheme -e '(+ 1 2)'
//	scheme expr.scm
//	scheme -config limits.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alttpo/scheme"
	"github.com/peterh/liner"
)

const (
	historyFile = ".scheme_history"
	promptMain  = "> "
	promptCont  = ". "
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("scheme: ")

	expr := flag.String("e", "", "evaluate `expr` and exit")
	configPath := flag.String("config", "", "YAML `file` with max_read_depth and max_eval_depth")
	noRepl := flag.Bool("no-repl", false, "read one expression from stdin instead of starting a prompt")
	flag.Parse()

	c := scheme.DefaultConfig()
	if *configPath != "" {
		var err error
		c, err = scheme.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	ip := scheme.NewInterpreter(c)

	switch {
	case *expr != "":
		os.Exit(runOnce(ip, *expr))
	case flag.NArg() > 0:
		b, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("read %s: %v", flag.Arg(0), err)
		}
		os.Exit(runOnce(ip, string(b)))
	case *noRepl:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		os.Exit(runOnce(ip, string(b)))
	}

	os.Exit(repl(ip))
}

func runOnce(ip *scheme.Interpreter, text string) int {
	out, err := ip.Run(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(out)
	return 0
}

func repl(ip *scheme.Interpreter) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		text, ok := readExpr(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(text, "\n", " "))

		out, err := ip.Run(text)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(out)
	}
}

// readExpr keeps prompting while the collected lines only fail to parse
// because they end too early.
func readExpr(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			log.Printf("prompt: %v", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}
		if _, perr := scheme.Parse(src); scheme.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
