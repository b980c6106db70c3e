package main

import "ytkit/cmd"

func main() {
	cmd.Execute()
}
