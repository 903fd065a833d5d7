package main

import "github.com/avasilyev/tredit/internal/cli"

func main() {
	cli.Main()
}
