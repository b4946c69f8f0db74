package main

import (
	"github.com/squadhelper/tryouts/internal/cli"
)

func main() {
	cli.Execute()
}
