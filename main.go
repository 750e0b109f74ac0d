package main

import "github.com/nkumar/govbot/internal/commands"

func main() {
	commands.Execute()
}
