// cmd/benchpress/main.go
package main

import (
	cmd "github.com/mwiater/benchpress/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the benchpress CLI by delegating to the cobra root command.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
