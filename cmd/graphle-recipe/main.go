package main

import (
	"github.com/NVIDIA/graphle-recipe/pkg/cli"
)

func main() {
	cli.Execute()
}
