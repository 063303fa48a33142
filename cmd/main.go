// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

// Package main is the entry point for the sdkgen CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/XuHaoJun/line-bot-sdk-rs/cmd/internal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := internal.Run(ctx, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
