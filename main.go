package main

import "github.com/velosprint/sprintlog-go/cmd"

func main() {
	cmd.Execute()
}
