// cmd/uci is the UCI protocol entry point: it owns stdin/stdout and
// delegates everything else to package uciproto, matching the teacher's
// root uci.go in spirit (bufio loop over stdin) but built on this module's
// own engine instead of the dropped dragontoothmg/GooseEngineMG stacks.
package main

import (
	"flag"
	"os"

	"goosecore/uciproto"
)

func main() {
	hashMB := flag.Int("hash", 256, "transposition table size in megabytes")
	flag.Parse()

	engine := uciproto.NewEngine(os.Stdout, *hashMB)
	engine.Run(os.Stdin)
}
