package main

import "github.com/harborbot/harborbot/cmd"

func main() {
	cmd.Execute()
}
