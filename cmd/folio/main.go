package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/folio/internal/cli"
	"github.com/matzehuels/folio/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).Execute(ctx, os.Args[1:])
	cancel()
	os.Exit(exitCode(os.Stderr, err))
}

// exitCode reports err on w and returns the process status for it:
// 130 after an interrupt, 2 for bad input or configuration, 1 otherwise.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if stderrors.Is(err, context.Canceled) {
		return 130
	}
	fmt.Fprintln(w, errors.UserMessage(err))
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSection, errors.ErrCodeNotFound:
		return 2
	}
	return 1
}
