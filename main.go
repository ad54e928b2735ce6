package main

import "kwarta/cmd"

func main() {
	cmd.Execute()
}
