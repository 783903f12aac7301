package main

import "github.com/mcoot/foundry/internal/cli"

func main() {
	cli.Execute()
}
