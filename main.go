// Package main is the entry point for the snapdiff CLI.
package main

import "snapdiff.dev/pkg/snapdiff/cmd"

func main() {
	cmd.Execute()
}
