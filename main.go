package main

import "hucha/cmd"

func main() {
	cmd.Execute()
}
