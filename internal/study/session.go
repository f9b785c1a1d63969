// Package study drives one adaptive study pass over a fixed card set.
//
// Each card carries a mastery score in [0, MasteryThreshold]. A correct answer
// raises the presented card's score by one, a wrong answer resets it to zero.
// After every answer the next card is drawn uniformly at random from the cards
// that are not yet mastered. The session is complete once every card is mastered.
//
// A Session is not safe for concurrent use.
package study

import (
	"math/rand/v2"

	"github.com/and161185/flashdeck/internal/model"
)

// MasteryThreshold is the score at which a card stops being presented.
const MasteryThreshold = 3

// State of a session.
type State int

const (
	InProgress State = iota
	Complete
)

func (s State) String() string {
	if s == Complete {
		return "complete"
	}
	return "in progress"
}

// Session is the in-memory mastery state of one study pass.
type Session struct {
	cards    []model.Card
	scores   []int
	current  int // index into cards, -1 when none
	answered int
	rnd      *rand.Rand
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used to draw cards.
func WithRand(r *rand.Rand) Option { return func(s *Session) { s.rnd = r } }

// New starts a session over cards. An empty card set yields a session that is
// already Complete.
func New(cards []model.Card, opts ...Option) *Session {
	s := &Session{
		cards:   append([]model.Card(nil), cards...),
		scores:  make([]int, len(cards)),
		current: -1,
	}
	for _, o := range opts {
		o(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.draw()
	return s
}

// CurrentCard returns the card to present, or false if the session is complete.
func (s *Session) CurrentCard() (model.Card, bool) {
	if s.current < 0 {
		return model.Card{}, false
	}
	return s.cards[s.current], true
}

// CurrentIndex returns the position of the presented card in the original
// card order, or -1 when complete.
func (s *Session) CurrentIndex() int { return s.current }

// Answer records the result for the presented card and draws the next one.
// It is a no-op when no card is presented.
func (s *Session) Answer(correct bool) {
	if s.current < 0 {
		return
	}
	if correct {
		s.scores[s.current] = min(MasteryThreshold, s.scores[s.current]+1)
	} else {
		s.scores[s.current] = 0
	}
	s.answered++
	s.draw()
}

// Progress returns how many cards are mastered out of the total.
func (s *Session) Progress() (mastered, total int) {
	for _, sc := range s.scores {
		if sc == MasteryThreshold {
			mastered++
		}
	}
	return mastered, len(s.scores)
}

// State reports whether the session is still in progress.
func (s *Session) State() State {
	if s.current < 0 {
		return Complete
	}
	return InProgress
}

// Scores returns a copy of the per-card scores in original card order.
func (s *Session) Scores() []int { return append([]int(nil), s.scores...) }

// Answered returns the number of recorded answers.
func (s *Session) Answered() int { return s.answered }

func (s *Session) draw() {
	eligible := make([]int, 0, len(s.scores))
	for i, sc := range s.scores {
		if sc < MasteryThreshold {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		s.current = -1
		return
	}
	s.current = eligible[s.rnd.IntN(len(eligible))]
}
