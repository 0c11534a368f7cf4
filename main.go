package main

import (
	"github.com/hungryops/lunchpick/cmd"
)

func main() {
	cmd.Execute()
}
