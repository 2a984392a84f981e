// Command pong-ebiten runs the game in an Ebitengine window.
//
//	go run ./cmd/pong-ebiten/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-theft-auto/pong"
	"github.com/go-theft-auto/pong/backend/ebitengine"
)

func main() {
	verbose := flag.Bool("v", false, "log every game event")
	flag.Parse()

	pong.SetVerbose(*verbose)

	if err := ebitengine.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
