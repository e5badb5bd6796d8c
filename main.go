package main

import "github.com/guzus/enterastab/cmd"

func main() {
	cmd.Execute()
}
