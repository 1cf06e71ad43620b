package main

import "github.com/tablescan/tablescan-cli/cmd"

func main() {
	cmd.Execute()
}
