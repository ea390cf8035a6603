/*
Package main is the entry point for the mylang interpreter. It
provides three modes of operation:

 1. File mode: execute a .mylang source file
 2. REPL mode (default, no arguments): interactive Read-Eval-Print Loop
 3. Server mode: a TCP REPL server, one Interpreter per connection
*/
package main

import (
	"net"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/akashmaji946/mylang/interp"
	"github.com/akashmaji946/mylang/parser"
	"github.com/akashmaji946/mylang/repl"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "mylang contributors"
	LICENSE = "MIT"
	PROMPT  = "mylang >>> "
)

var BANNER = `
  _ __ ___  _   _| | __ _ _ __   __ _
 | '_ \` + "`" + ` _ \| | | | |/ _\` + "`" + ` | '_ \ / _\` + "`" + ` |
 | | | | | | |_| | | (_| | | | | (_| |
 |_| |_| |_|\__, |_|\__,_|_| |_|\__, |
            |___/               |___/
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. Usage: mylang server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("mylang - a small dynamically-typed scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  mylang                    Start interactive REPL mode")
	yellowColor.Println("  mylang <path-to-file>     Execute a mylang file (.mylang)")
	yellowColor.Println("  mylang server <port>      Start a REPL server on the given port")
	yellowColor.Println("  mylang --help             Display this help message")
	yellowColor.Println("  mylang --version          Display version information")
}

func showVersion() {
	cyanColor.Println("mylang - a small dynamically-typed scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// runFile executes a single .mylang source file. A wrong extension is
// a Host error (spec.md §7 kind 4): it never reaches the lexer.
func runFile(fileName string) {
	if filepath.Ext(fileName) != ".mylang" {
		redColor.Fprintf(os.Stderr, "[HOST ERROR] %q is not a .mylang file\n", fileName)
		os.Exit(1)
	}

	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[HOST ERROR] could not read %q: %v\n", fileName, err)
		os.Exit(1)
	}

	executeWithRecovery(os.Stdout, os.Stdin, string(source))
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[HOST ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("mylang REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[HOST ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient runs one interp.Interpreter per connection (spec.md §6:
// "one interpreter per connection"), so concurrent clients never share
// global state.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

// executeWithRecovery parses and runs a whole file once, converting
// panics into a Host error (spec.md §7 kind 4) and any of the other
// three fatal error kinds into a non-zero exit with the error printed.
func executeWithRecovery(w *os.File, r *os.File, source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[HOST ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.New(source)
	prog := p.Parse()

	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		os.Exit(1)
	}

	it := interp.New(w, r)
	result, err := it.Run(prog)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %s\n", err)
		os.Exit(1)
	}

	if result != nil && result.GetType() != "nil" {
		yellowColor.Fprintf(w, "%s\n", result.String())
	}
}
