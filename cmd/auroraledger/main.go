package main

import (
	"os"

	"auroraledger/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
