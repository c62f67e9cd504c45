package protocol

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/gridproof/gridproof/logger"
)

// Option defines an option altering the behavior of a Protocol. See the
// descriptions of functions returning instances of this type for implemented
// options.
type Option func(*config) error

type config struct {
	rounds  int
	workers int
	rand    io.Reader
	log     zerolog.Logger
	prover  RoundProver // nil means honest prover built from the solution
}

func defaultConfig() config {
	return config{
		rounds:  DefaultRounds,
		workers: 1,
		log:     logger.Logger(),
	}
}

// WithRounds sets the number of repetition rounds R. A cheating prover
// passes all rounds with probability at most (27/28)^R; the default drives
// that bound below 2^-256.
func WithRounds(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("protocol: invalid round count %d", n)
		}
		cfg.rounds = n
		return nil
	}
}

// WithParallelism runs rounds across the given number of workers. Rounds are
// independent, so this does not change the protocol's distribution; failure
// in any round still fails the whole run. Defaults to 1 (serial).
func WithParallelism(workers int) Option {
	return func(cfg *config) error {
		if workers <= 0 {
			return fmt.Errorf("protocol: invalid worker count %d", workers)
		}
		cfg.workers = workers
		return nil
	}
}

// WithRand overrides the entropy source used for permutations, nonces and
// challenge selection. Defaults to crypto/rand. The reader must be safe for
// concurrent use if combined with WithParallelism.
func WithRand(r io.Reader) Option {
	return func(cfg *config) error {
		if r == nil {
			return fmt.Errorf("protocol: nil entropy source")
		}
		cfg.rand = r
		return nil
	}
}

// WithLogger sets the zerolog logger used for round progress and the final
// outcome. By default, uses gridproof/logger. zerolog.Nop() disables logging.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) error {
		cfg.log = l
		return nil
	}
}

// WithProver substitutes the prover side, e.g. to simulate a dishonest
// prover. The protocol then runs rounds serially, since a single RoundProver
// carries per-round state.
func WithProver(p RoundProver) Option {
	return func(cfg *config) error {
		if p == nil {
			return fmt.Errorf("protocol: nil prover")
		}
		cfg.prover = p
		return nil
	}
}
