package main

import "github.com/example/skedda-booker/cmd"

func main() {
	cmd.Execute()
}
