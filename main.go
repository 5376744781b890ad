package main

// @title           Druid Console
// @version         0.1.0
// @description     Druid Console serves interactive server consoles: a command interpreter driving the lifecycle of a managed server.

import (
	"os"

	"github.com/highcard-dev/console/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(23)
	}
}
