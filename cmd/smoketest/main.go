// Command smoketest checks the terbilang converter outside the unit tests.
//
//	go run ./cmd/smoketest cases                   # embedded data/smoke_cases.yaml
//	go run ./cmd/smoketest cases -f extra.yaml
//	go run ./cmd/smoketest sweep --from 0 --to 10000000 --workers 8
//
// Exits with status 1 when any check fails.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
