package main

import (
	"fmt"
	"io"
	"runtime"

	templet "github.com/itsatony/go-templet"
)

func runVersion(stdout io.Writer) int {
	fmt.Fprintf(stdout, "templet %s (%s)\n", templet.Version, runtime.Version())
	return ExitCodeSuccess
}
