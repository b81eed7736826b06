// cmd/modelhub/main.go
package main

import (
	modelhub "github.com/marouane-chirane/ModelHub/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the modelhub CLI by delegating to the cobra root command.
func main() {
	modelhub.SetVersionInfo(version, commit, date)
	modelhub.Execute()
}
