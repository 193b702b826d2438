// Package main is the entry point for the routefix CLI.
package main

import "github.com/mrskwiw/routefix/cmd"

func main() {
	cmd.Execute()
}
