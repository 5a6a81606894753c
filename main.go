package main

import "github.com/budgettech/streamsaver/cmd"

func main() {
	cmd.Execute()
}
