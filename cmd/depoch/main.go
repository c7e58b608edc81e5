// Command depoch formats dates through token templates, describes them relative to now, and
// serves the same operations over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "depoch:", err)
		os.Exit(1)
	}
}
