// Command tabclean reports and cleans missing and atypical values in
// .csv and .html tables.
package main

import (
	"os"

	"github.com/paveg/tabclean/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
