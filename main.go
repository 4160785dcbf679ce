package main

import "github.com/dotcommander/ccplug/cmd"

func main() {
	cmd.Execute()
}
