package main

import "github.com/alexiusacademia/ncpunch/cmd"

func main() {
	cmd.Execute()
}
