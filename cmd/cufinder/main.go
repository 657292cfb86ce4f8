// Command cufinder calls CUFinder API operations from the shell.
//
// Usage:
//
//	cufinder list
//	cufinder cuf --company-name TechCorp --country-code US
//	cufinder --output yaml pse --job-title-role engineering --page 2
package main

import (
	"fmt"
	"io"
	"os"
)

// Streams holds the process I/O the command writes to.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultStreams returns the process standard streams.
func DefaultStreams() Streams {
	return Streams{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func main() {
	if err := run(os.Args, DefaultStreams()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, streams Streams) error {
	return newApp(streams).Run(args)
}
