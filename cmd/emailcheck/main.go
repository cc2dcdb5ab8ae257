package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrymomot/emailaddr/cmd/emailcheck/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := commands.Execute(ctx)
	switch {
	case err == nil:
		return
	case errors.Is(err, commands.ErrInvalidAddresses):
		stop()
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(2)
	}
}
