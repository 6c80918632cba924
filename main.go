package main

import "advisor/cmd"

func main() {
	cmd.Execute()
}
