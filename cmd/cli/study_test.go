package main

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/and161185/flashdeck/internal/model"
	"github.com/and161185/flashdeck/internal/study"
)

func press(t *testing.T, m studyModel, key string) (studyModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	sm, ok := next.(studyModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return sm, cmd
}

func Test_studyModel_RevealAndMaster(t *testing.T) {
	t.Parallel()

	cards := []model.Card{{Question: "2+2?", Answer: "4"}, {Question: "3+3?", Answer: "6"}}
	m := newStudyModel("Math", cards, study.WithRand(rand.New(rand.NewPCG(1, 2))))

	if v := m.View(); !strings.Contains(v, "Math") || !strings.Contains(v, "show answer") {
		t.Fatalf("initial view: %s", v)
	}

	// answering before reveal does nothing
	m, _ = press(t, m, "y")
	if m.session.Answered() != 0 {
		t.Fatalf("answer before reveal must be ignored")
	}

	for i := 0; i < 3*len(cards); i++ {
		m, _ = press(t, m, " ")
		if !m.revealed {
			t.Fatalf("space must reveal the answer")
		}
		card, _ := m.session.CurrentCard()
		if !strings.Contains(m.View(), card.Answer) {
			t.Fatalf("revealed view must show the answer")
		}
		m, _ = press(t, m, "y")
	}
	if m.session.State() != study.Complete {
		t.Fatalf("want complete after %d correct answers, scores=%v", 3*len(cards), m.session.Scores())
	}
	if !strings.Contains(m.View(), "All cards mastered in 6 answers") {
		t.Fatalf("completion view: %s", m.View())
	}
	if _, cmd := press(t, m, "x"); cmd == nil {
		t.Fatalf("any key must quit once complete")
	}
}

func Test_studyModel_WrongAnswerAndQuit(t *testing.T) {
	t.Parallel()

	m := newStudyModel("One", []model.Card{{Question: "q", Answer: "a"}})
	m, _ = press(t, m, " ")
	m, _ = press(t, m, "y")
	m, _ = press(t, m, " ")
	m, _ = press(t, m, "n")
	if got := m.session.Scores()[0]; got != 0 {
		t.Fatalf("wrong answer must reset score, got %d", got)
	}
	m, cmd := press(t, m, "q")
	if !m.quit || cmd == nil {
		t.Fatalf("q must quit")
	}
}

func Test_runStudyTUI_EmptyDeck(t *testing.T) {
	t.Parallel()

	if err := runStudyTUI("x", nil); err == nil {
		t.Fatalf("empty deck must fail")
	}
}

func Test_studyModel_Scoreboard(t *testing.T) {
	t.Parallel()

	cards := []model.Card{{Question: "a", Answer: "1"}, {Question: "b", Answer: "2"}}
	m := newStudyModel("Deck", cards, study.WithRand(rand.New(rand.NewPCG(3, 4))))

	first := m.session.CurrentIndex()
	want := []string{"...", "..."}
	want[first] = "[...]"
	if got := m.scoreboard(); !strings.Contains(got, strings.Join(want, " ")) {
		t.Fatalf("fresh scoreboard = %q", got)
	}

	m, _ = press(t, m, " ")
	m, _ = press(t, m, "y")

	board := m.scoreboard()
	if !strings.Contains(board, "#..") {
		t.Fatalf("answered card must show one point: %q", board)
	}
	if next := m.session.CurrentIndex(); next >= 0 && strings.Count(board, "[") != 1 {
		t.Fatalf("exactly one card is presented: %q", board)
	}
	if !strings.Contains(m.View(), board) {
		t.Fatalf("view must include the scoreboard")
	}
}
