package main

import (
	"github.com/panyam/lossq/cmd/lossq/commands"
)

func main() {
	commands.Execute()
}
