// Command hmtype runs the Hindley-Milner type inference engine against a
// catalogue of built-in example expressions.
package main

import "wisp/cmd/hmtype/commands"

func main() {
	commands.Execute()
}
