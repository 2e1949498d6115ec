// Command dyck enumerates Dyck paths and the acyclic orientations of the
// boxes beneath them.
package main

import "github.com/katalvlaran/dyck/internal/cli"

func main() {
	cli.Main()
}
