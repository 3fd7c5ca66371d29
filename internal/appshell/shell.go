// Package appshell adapts a command's run function to a process.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a command body: it returns the process exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Run calls run with argv, substituting "-h" when argv is empty. If ctx was
// cancelled and run still reported success, canceledCode is returned.
func Run(ctx context.Context, run RunFunc, argv []string, stdout, stderr io.Writer, canceledCode int) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = canceledCode
	}
	return code
}

// Main runs a command under a context cancelled by SIGINT/SIGTERM and exits.
func Main(run RunFunc, canceledCode int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, run, os.Args[1:], os.Stdout, os.Stderr, canceledCode)
	stop()
	os.Exit(code)
}
