package main

import "tomatolog/cmd"

func main() {
	cmd.Execute()
}
