//go:build !js

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"rpncalc/internal/cmd"
	"rpncalc/internal/session"
)

func main() {
	// Parse command-line flags
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "print the working steps of the evaluation")
	flag.BoolVar(&verbose, "verbose", false, "print the working steps of the evaluation")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "Reads a postfix expression terminated by ';' from standard input.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Create session options
	options := &session.Options{
		Verbose: verbose,
	}

	// Create evaluation session bound to stdin/stdout/stderr
	sess := session.New(options)

	// Run the evaluation
	if err := cmd.Run(sess); err != nil {
		sess.EmitDiagnostics()
		os.Exit(1)
	}

	// Emit any warnings (e.g. leftover operands on the stack)
	sess.EmitDiagnostics()
}
