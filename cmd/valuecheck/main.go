package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/valuecheck/cmd/valuecheck/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
