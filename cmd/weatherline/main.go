package main

import (
	"github.com/i474232898/weatherline/internal/commands"
)

func main() {
	commands.Execute()
}
