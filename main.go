package main

import "renthub/cmd"

func main() {
	cmd.Execute()
}
