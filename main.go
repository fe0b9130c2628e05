package main

import "github.com/hexview/hexview/cli"

func main() {
	cli.Root.Run()
}
