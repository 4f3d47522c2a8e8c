package main

import (
	"os"

	"github.com/lucky7xz/datacard/internal/app"
)

func main() {
	os.Exit(app.Run())
}
