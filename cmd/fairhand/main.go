package main

import (
	"github.com/fairhand/fairhand/internal/cli"
)

func main() {
	cli.Execute()
}
