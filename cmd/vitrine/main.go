// Command vitrine is the Vitrine CLI.
package main

import (
	"os"

	"github.com/go-vitrine/vitrine/cmd/vitrine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
