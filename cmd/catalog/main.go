package main

import (
	"os"

	"github.com/Michwuanquana/vybav.it-sub000/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
