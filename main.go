package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Oshri-Halevi/TaskManagerApp/cmd"
	"github.com/Oshri-Halevi/TaskManagerApp/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	if err == nil {
		return
	}

	// Commands report their own errors; anything else is cobra rejecting
	// the command line
	var codeErr *cli.CodeError
	if !errors.As(err, &codeErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'taskmanager --help' for usage.")
		os.Exit(cli.ExitUsage)
	}
	os.Exit(cli.ExitCode(err))
}
