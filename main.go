// Package main is the entry point for the wingetup CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The wingetup tool automates winget
// upgrades behind a version policy so scheduled runs only apply the
// jumps the machine owner allows.
package main

import "github.com/ajxudir/wingetup/cmd"

// main initializes and runs the wingetup CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like list, outdated, upgrade, and config.
func main() {
	cmd.Execute()
}
