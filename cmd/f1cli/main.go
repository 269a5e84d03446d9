package main

import "github.com/padraicbc/f1dash/cli"

func main() {
	cli.Execute()
}
