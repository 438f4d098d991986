// Command lc3vm loads an LC-3 object file and runs it to completion,
// wiring the internal/lc3 core to a real terminal via internal/hostio.
// Argument parsing, terminal setup, and signal handling are all outside
// the core (spec.md §1, §6) — this file is where they live.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lc3vm/internal/hostio"
	"lc3vm/internal/lc3"
)

// asyncTerminateExitCode is the platform equivalent of the spec's "-2":
// os.Exit only accepts a byte-wide status, so this is -2 truncated to the
// low 8 bits (spec.md §6 "Exit status").
const asyncTerminateExitCode = 254

func main() {
	if len(os.Args) < 2 {
		return // spec.md §6: zero arguments exit 0 with no output
	}
	os.Exit(run(os.Args[1]))
}

func run(imagePath string) int {
	f, err := os.Open(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lc3vm: failed to load image %s: %v\n", imagePath, err)
		return 1
	}
	defer f.Close()

	term, err := hostio.OpenTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lc3vm: failed to set up terminal: %v\n", err)
		return 1
	}
	defer term.Close()

	io, err := hostio.NewIO()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lc3vm: failed to open keyboard: %v\n", err)
		return 1
	}
	defer io.Close()

	m := lc3.NewMachine(io)
	if err := lc3.LoadImage(&m.Mem, f); err != nil {
		fmt.Fprintf(os.Stderr, "lc3vm: failed to load image %s: %v\n", imagePath, err)
		return 1
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- m.Run(io)
	}()

	select {
	case <-sigCh:
		return asyncTerminateExitCode
	case <-io.Interrupted():
		return asyncTerminateExitCode
	case err := <-done:
		return exitCodeFor(err)
	}
}

// exitCodeFor maps the core's terminal errors to a process exit status
// (spec.md §7). A nil error is the ordinary clean-HALT path.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, hostio.ErrInterrupted) {
		return asyncTerminateExitCode
	}
	var fatal *lc3.FatalOpcodeError
	if errors.As(err, &fatal) {
		fmt.Fprintf(os.Stderr, "lc3vm: %v\n", fatal)
		return 2
	}
	fmt.Fprintf(os.Stderr, "lc3vm: %v\n", err)
	return 1
}
