package main

import "github.com/wandersync/wandersync-cli/cmd"

func main() {
	cmd.Execute()
}
