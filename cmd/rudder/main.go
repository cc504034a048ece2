// Command rudder is the Rudder CLI: boilerplate generation for screens and
// controllers.
package main

import (
	"os"

	"github.com/go-drift/rudder/cmd/rudder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
