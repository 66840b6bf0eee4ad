// Package main is the authtui entry point.
package main

import "github.com/atinyakov/authtui/internal/cli"

func main() {
	cli.Execute()
}
