package main

import "github.com/shaunpsauer/Actuals/cmd"

func main() {
	cmd.Execute()
}
