package main

import (
	"context"
	"os"

	"github.com/latoulicious/weather-dominator/internal/commands"
)

func main() {
	os.Exit(commands.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
