package main

import (
	"os"

	"github.com/gqlkit/gqlkit/cmd"
)

func main() {
	app := cmd.NewApp()
	os.Exit(app.Main(os.Args[1:]))
}
