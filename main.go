// Package main is the entry point for the arlsp CLI.
package main

import "github.com/Anti-Raid/luau-lsp/cmd"

func main() {
	cmd.Execute()
}
