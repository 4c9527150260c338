package main

import "github.com/queueworks/qcalc/cmd/qcalc/commands"

func main() {
	commands.Execute()
}
