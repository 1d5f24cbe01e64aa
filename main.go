package main

import (
	"github.com/mergepick/mergepick/cmd"
)

var version = "0.0.1"

func main() {
	cmd.Execute(version)
}
