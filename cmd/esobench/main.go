// cmd/esobench/main.go
package main

import (
	cmd "github.com/CadeHall0/EsoBench/internal/cli"
)

// executeCmd is replaced in tests.
var executeCmd = cmd.Execute

// main starts the esobench CLI by delegating to the cobra root command.
func main() {
	executeCmd()
}
