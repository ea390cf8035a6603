/*
Package repl implements the Read-Eval-Print Loop for mylang. The REPL
keeps one Interpreter alive across lines, so variables and function
definitions persist between inputs — the same whole-program Environment
and Funcs table a script execution uses, just fed one statement (or
block) at a time (spec.md §6).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/mylang/interp"
	"github.com/akashmaji946/mylang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl ready to Start.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to mylang!")
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the interactive loop against reader (consulted only by
// Input expressions within evaluated code, not by readline itself) and
// writer (banner, results, errors, and Print output).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New(writer, reader)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, it)
	}
}

// executeWithRecovery parses and evaluates one line, converting both
// panics (a bug, not a user-triggerable runtime error) and the four
// kinds of fatal error spec.md §7 describes into colored output, and
// never lets either tear down the REPL loop itself.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[HOST ERROR] %v\n", recovered)
		}
	}()

	p := parser.New(line)
	prog := p.Parse()

	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result, err := it.Run(prog)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
