package main

import "github.com/npillmayer/pointwise/internal/cli"

func main() {
	cli.Execute()
}
