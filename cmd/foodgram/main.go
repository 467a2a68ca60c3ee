package main

import "foodgram-backend/cmd/foodgram/commands"

func main() {
	commands.Execute()
}
