package main

import (
	"os"

	"github.com/robalobadob/wordle/apps/cli/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
