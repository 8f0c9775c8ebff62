package main

import "soluna/cmd"

func main() {
	cmd.Execute()
}
