package main

import (
	"os"

	"github.com/flarebyte/hello/cmd/hello/root"
)

func main() {
	// A failed write to stdout is left unreported; the process still exits 0.
	_ = root.Execute(os.Args[1:])
}
