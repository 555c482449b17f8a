// Command nodify runs the example searches of the nodify module from the
// command line.
package main

import "github.com/katalvlaran/nodify/cmd/nodify/cmd"

func main() {
	cmd.Execute()
}
