/*
	Copyright 2024 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/tyresim/cmd"

func main() {
	cmd.Execute()
}
