package main

import "github.com/tanglefoot/multimatch/cmd"

func main() {
	cmd.Execute()
}
