package main

import (
	"github.com/partygamehq/partygame-go/internal/cli"
)

func main() {
	cli.Execute()
}
