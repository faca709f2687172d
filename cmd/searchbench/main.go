// cmd/searchbench drives the search package directly against a fixed depth
// and FEN, adapted from the teacher's cmd/searchbench/main.go (same flag
// surface) but built on this module's own board/movegen/tt/eval/search
// stack instead of the dropped engine/goosemg packages.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"goosecore/board"
	"goosecore/eval"
	"goosecore/magic"
	"goosecore/movegen"
	"goosecore/search"
	"goosecore/tt"
	"goosecore/zobrist"
)

func main() {
	depthFlag := flag.Int("depth", 10, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	hashMB := flag.Int("hash", 256, "transposition table size in megabytes")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	fen := board.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, *depthFlag, *repeatFlag)

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		zt := zobrist.New()
		pos, err := board.ParseFEN(fen, zt)
		if err != nil {
			log.Fatalf("ParseFEN: %v", err)
		}
		gen := movegen.New(magic.New())
		table := tt.New(*hashMB)
		s := search.New(gen, table, eval.NewMaterial())

		iterStart := time.Now()
		result := s.StartSearch(context.Background(), pos, *depthFlag, nil)
		iterElapsed := time.Since(iterStart)

		best := "0000"
		if len(result.PV) > 0 {
			best = result.PV[0].String()
		}
		fmt.Printf("iteration %d: bestmove %s nodes=%d score=%d time=%v\n",
			i+1, best, result.Nodes, result.Score, iterElapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v\n", totalElapsed)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
