//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of tectomap requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/tectomap` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Use ./cmd/mapdump to export a map without a window.")
	os.Exit(2)
}
