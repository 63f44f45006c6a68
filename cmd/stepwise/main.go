package main

import "github.com/tessro/stepwise/internal/cli"

func main() {
	cli.Execute()
}
