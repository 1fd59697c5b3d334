//go:build js || wasip1

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"pingtcp needs a host TCP/IP stack and cannot run under js/wasm or wasip1.\n\nPlease build it for a regular operating system target.",
	)
	os.Exit(5)
}
