// Command yai parses yai source files and prints their syntax tree.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("yai: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if errors.Is(err, errReported) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
