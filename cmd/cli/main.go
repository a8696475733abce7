// mostactive - Most Active Cookie Finder
//
// mostactive reads a cookie log and prints the cookie(s) seen most often
// on a given day.
package main

import (
	"os"

	"github.com/ccollicutt/mostactive/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
