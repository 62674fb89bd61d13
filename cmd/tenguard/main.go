package main

import (
	"os"

	"tenguard.watch/trends/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
