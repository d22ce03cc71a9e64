package main

import "solid-example/cmd"

func main() {
	cmd.Execute()
}
