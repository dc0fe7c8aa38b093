package main

import "github.com/varesa/imap-archive/internal/cli"

func main() {
	cli.Execute()
}
