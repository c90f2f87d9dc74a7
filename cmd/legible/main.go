// Legible - an accessibility contrast checker for colour palettes
//
// Legible scores every ordered text/background combination of a colour
// palette against the WCAG 2.1 and APCA readability guidelines.
//
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/legiblehq/legible/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
