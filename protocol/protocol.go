package protocol

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gridproof/gridproof/sudoku"
)

// DefaultRounds is the default soundness parameter. A cheating prover passes
// one round with probability at most 27/28, so 5000 rounds bound the overall
// false-accept probability by (27/28)^5000, well below 2^-256.
const DefaultRounds = 5000

// SoundnessError returns the false-accept probability bound (27/28)^rounds
// for a prover without a valid solution.
func SoundnessError(rounds int) float64 {
	perRound := float64(NbChallenges-1) / float64(NbChallenges)
	return math.Pow(perRound, float64(rounds))
}

// Protocol drives the full interactive proof: R independent rounds of
// Permute -> Commit -> Challenge -> Reveal -> Verify, aborting on the first
// failing round. No state is carried between rounds beyond the immutable
// puzzle and solution.
type Protocol struct {
	puzzle   sudoku.Grid
	solution sudoku.Grid
	cfg      config
}

// New builds a Protocol for the given public puzzle and secret solution.
// The puzzle must be well-formed; the solution must be a valid completed
// grid (checked when the honest prover is constructed). Whether the solution
// actually solves this particular puzzle is the caller's contract.
func New(puzzle, solution sudoku.Grid, opts ...Option) (*Protocol, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if !puzzle.ValidPuzzle() {
		return nil, errors.New("protocol: malformed puzzle grid")
	}
	return &Protocol{puzzle: puzzle, solution: solution, cfg: cfg}, nil
}

// Puzzle returns the public puzzle the proof is about. The solution never
// leaves the prover.
func (p *Protocol) Puzzle() sudoku.Grid {
	return p.puzzle
}

// Run executes the configured number of rounds and reports whether every
// round verified. A false return is the designed detection of a dishonest
// prover, not an error; errors are reserved for entropy failures, contract
// violations and context cancellation.
func (p *Protocol) Run(ctx context.Context) (bool, error) {
	log := p.cfg.log
	log.Info().
		Int("rounds", p.cfg.rounds).
		Int("workers", p.cfg.workers).
		Float64("soundnessError", SoundnessError(p.cfg.rounds)).
		Msg("running interactive proof")
	start := time.Now()

	var ok bool
	var err error
	if p.cfg.workers > 1 && p.cfg.prover == nil {
		ok, err = p.runParallel(ctx)
	} else {
		ok, err = p.runSerial(ctx)
	}
	if err != nil {
		return false, err
	}
	if ok {
		log.Info().Dur("took", time.Since(start)).Msg("proof accepted")
	} else {
		log.Warn().Dur("took", time.Since(start)).Msg("proof rejected")
	}
	return ok, nil
}

func (p *Protocol) runSerial(ctx context.Context) (bool, error) {
	prover := p.cfg.prover
	if prover == nil {
		honest, err := newProver(p.solution, p.entropy())
		if err != nil {
			return false, err
		}
		prover = honest
	}
	verifier := newVerifier(p.entropy())
	for i := 0; i < p.cfg.rounds; i++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		ok, ch, err := runRound(prover, verifier)
		if err != nil {
			return false, err
		}
		if !ok {
			p.cfg.log.Warn().Int("round", i).Str("challenge", ch.Label).Msg("round verification failed")
			return false, nil
		}
		p.cfg.log.Debug().Int("round", i).Str("challenge", ch.Label).Msg("round verified")
	}
	return true, nil
}

var errRoundFailed = errors.New("protocol: round verification failed")

func (p *Protocol) runParallel(ctx context.Context) (bool, error) {
	g, ctx := errgroup.WithContext(ctx)
	var issued atomic.Int64
	total := int64(p.cfg.rounds)
	for w := 0; w < p.cfg.workers; w++ {
		g.Go(func() error {
			// each worker owns a private prover and verifier; the only
			// shared state is the round counter and the entropy source
			prover, err := newProver(p.solution, p.entropy())
			if err != nil {
				return err
			}
			verifier := newVerifier(p.entropy())
			for {
				i := issued.Add(1)
				if i > total {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				ok, ch, err := runRound(prover, verifier)
				if err != nil {
					return err
				}
				if !ok {
					p.cfg.log.Warn().Int64("round", i-1).Str("challenge", ch.Label).Msg("round verification failed")
					return errRoundFailed
				}
				p.cfg.log.Debug().Int64("round", i-1).Str("challenge", ch.Label).Msg("round verified")
			}
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, errRoundFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// runRound executes one full round between the two parties.
func runRound(prover RoundProver, verifier *Verifier) (bool, Challenge, error) {
	com, err := prover.Commit()
	if err != nil {
		return false, Challenge{}, err
	}
	ch, err := verifier.Challenge()
	if err != nil {
		return false, Challenge{}, err
	}
	resp, err := prover.Reveal(ch)
	if err != nil {
		return false, Challenge{}, err
	}
	return verifier.Verify(ch, resp, com), ch, nil
}

func (p *Protocol) entropy() io.Reader {
	if p.cfg.rand != nil {
		return p.cfg.rand
	}
	return rand.Reader
}
