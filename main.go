package main

import (
	"fmt"
	"os"

	"github.com/jkoskela/windgen/cmd"
	"github.com/jkoskela/windgen/internal/conf"
)

func main() {
	ctx, err := conf.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	if err := cmd.RootCommand(ctx).Execute(); err != nil {
		os.Exit(1)
	}
}
