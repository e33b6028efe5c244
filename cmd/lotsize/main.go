package main

import "github.com/rustyeddy/lotsize/internal/cli"

func main() {
	cli.Execute()
}
