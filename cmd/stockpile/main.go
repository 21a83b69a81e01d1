// Package main provides the stockpile CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/stockpile/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
