package main

import (
	"os"

	"github.com/danmuck/actionctl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
