package main

import "github.com/mcoot/wordhunt/internal/cli"

func main() {
	cli.Execute()
}
