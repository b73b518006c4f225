// NxN Cube - terminal Rubik's cube game of any size.
package main

import (
	"github.com/SeamusWaldron/nxncube/internal/cli"
)

func main() {
	cli.Execute()
}
