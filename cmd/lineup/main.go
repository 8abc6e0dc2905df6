package main

import (
	"github.com/teamlineup/lineup/internal/cli"
)

func main() {
	cli.Execute()
}
