package main

import "github.com/notargets/femplot/cmd"

func main() {
	cmd.Execute()
}
