package main

import "github.com/mcoot/wordcapture/internal/cli"

func main() {
	cli.Execute()
}
