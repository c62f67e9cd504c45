// gridproof runs the interactive zero-knowledge proof for the reference
// Sudoku puzzle and reports whether the verifier accepted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/gridproof/gridproof/logger"
	"github.com/gridproof/gridproof/protocol"
	"github.com/gridproof/gridproof/sudoku"
)

var (
	fRounds  = flag.Int("rounds", protocol.DefaultRounds, "number of proof rounds")
	fWorkers = flag.Int("workers", 1, "number of parallel round workers")
	fVerbose = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()
	if *fVerbose {
		logger.Set(logger.Logger().Level(zerolog.DebugLevel))
	}
	log := logger.Logger()

	puzzle := sudoku.ReferencePuzzle
	solution := sudoku.ReferenceSolution
	if !solution.Solves(puzzle) {
		log.Fatal().Msg("embedded solution does not solve the embedded puzzle")
	}

	proof, err := protocol.New(puzzle, solution,
		protocol.WithRounds(*fRounds),
		protocol.WithParallelism(*fWorkers),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("protocol setup failed")
	}

	fmt.Println("public puzzle:")
	fmt.Print(proof.Puzzle().String())
	fmt.Printf("proving knowledge of a solution over %d rounds (cheating bound %.3g)\n",
		*fRounds, protocol.SoundnessError(*fRounds))

	accepted, err := proof.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("protocol run failed")
	}
	if !accepted {
		fmt.Println("proof rejected")
		os.Exit(1)
	}
	fmt.Println("proof accepted: the prover knows a valid solution")
}
