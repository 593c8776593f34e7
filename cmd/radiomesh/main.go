// Command radiomesh analyzes radio-network scenarios: spanning tree, hop
// routes, diameter and a frequency-assignment (coloring) estimate.
package main

import "github.com/katalvlaran/radiomesh/cmd/radiomesh/commands"

func main() {
	commands.Execute()
}
