// TMTQuant - TMT reporter ion extraction tool
package main

import (
	"fmt"
	"os"

	"github.com/ChrisMcGann/TMTQuant/cmd/tmtquant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
