package main

import (
	"context"
	"fmt"
	"os"

	"autonews/bootstrap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := bootstrap.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "autonews failed to start: %v\n", err)
		os.Exit(1)
	}
}
