// Package schedule drives one bulk pairing submission from raw form values to
// the created batch.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"arbiter/internal/pairing"
)

var ErrNoPlayers = errors.New("No players given")

type TokenResolver interface {
	AdminChallengeTokens(ctx context.Context, usernames []string) (pairing.TokenMap, error)
}

type PairingCreator interface {
	CreateBulkPairing(ctx context.Context, payload pairing.Payload) (pairing.BulkPairing, error)
}

// Form holds the schedule form fields as typed by the operator.
type Form struct {
	Players        string
	ClockLimit     string // minutes
	ClockIncrement string // seconds
	Variant        string
	Rated          bool
	RandomColor    bool
	PairAt         string
	StartClocksAt  string
	Rules          []string
	FEN            string
	Message        string
}

type Submitter struct {
	Tokens   TokenResolver
	Pairings PairingCreator
	Rand     *rand.Rand
	Location *time.Location
	Now      func() time.Time
	Log      *zap.Logger
}

// submission carries what each step produced for the next one.
type submission struct {
	form    Form
	req     pairing.Request
	tokens  pairing.TokenMap
	payload pairing.Payload
	result  pairing.BulkPairing
}

type step struct {
	name string
	run  func(ctx context.Context, sub *submission) error
}

func (s *Submitter) steps() []step {
	return []step{
		{"parse", s.parse},
		{"resolve tokens", s.resolve},
		{"assemble", s.assemble},
		{"create", s.create},
	}
}

// Submit parses the form, mints tokens, and creates the batch: one token call,
// then one creation call. The first failing step ends the submission.
func (s *Submitter) Submit(ctx context.Context, form Form) (pairing.BulkPairing, error) {
	log := s.logger()
	sub := &submission{form: form}
	for _, st := range s.steps() {
		if err := st.run(ctx, sub); err != nil {
			log.Info("bulk pairing submission failed", zap.String("step", st.name), zap.Error(err))
			return pairing.BulkPairing{}, err
		}
	}
	log.Info("bulk pairing created",
		zap.String("id", sub.result.ID),
		zap.Int("games", len(sub.result.Games)))
	return sub.result, nil
}

func (s *Submitter) parse(_ context.Context, sub *submission) error {
	pairs, err := pairing.ParsePairs(sub.form.Players)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return ErrNoPlayers
	}
	limit, err := strconv.ParseFloat(strings.TrimSpace(sub.form.ClockLimit), 64)
	if err != nil || limit < 0 {
		return fmt.Errorf("Invalid clock limit %q", sub.form.ClockLimit)
	}
	increment, err := strconv.Atoi(strings.TrimSpace(sub.form.ClockIncrement))
	if err != nil || increment < 0 {
		return fmt.Errorf("Invalid clock increment %q", sub.form.ClockIncrement)
	}
	if fen := strings.TrimSpace(sub.form.FEN); fen != "" {
		if _, err := pairing.ValidateFEN(fen); err != nil {
			return err
		}
	}
	now := s.now()
	pairAt, err := pairing.ParseMillis(sub.form.PairAt, s.Location, now)
	if err != nil {
		return err
	}
	startClocksAt, err := pairing.ParseMillis(sub.form.StartClocksAt, s.Location, now)
	if err != nil {
		return err
	}
	sub.req = pairing.Request{
		Pairs:          pairs,
		ClockLimitMin:  limit,
		ClockIncrement: increment,
		Variant:        sub.form.Variant,
		Rated:          sub.form.Rated,
		RandomColor:    sub.form.RandomColor,
		PairAt:         pairAt,
		StartClocksAt:  startClocksAt,
		Rules:          sub.form.Rules,
		FEN:            sub.form.FEN,
		Message:        sub.form.Message,
	}
	return nil
}

func (s *Submitter) resolve(ctx context.Context, sub *submission) error {
	tokens, err := s.Tokens.AdminChallengeTokens(ctx, pairing.Flatten(sub.req.Pairs))
	if err != nil {
		return err
	}
	sub.tokens = tokens
	return nil
}

func (s *Submitter) assemble(_ context.Context, sub *submission) error {
	payload, err := pairing.Assemble(sub.req, sub.tokens, s.Rand)
	if err != nil {
		return err
	}
	sub.payload = payload
	return nil
}

func (s *Submitter) create(ctx context.Context, sub *submission) error {
	result, err := s.Pairings.CreateBulkPairing(ctx, sub.payload)
	if err != nil {
		return err
	}
	sub.result = result
	return nil
}

func (s *Submitter) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Submitter) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
