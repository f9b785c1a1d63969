package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/and161185/flashdeck/internal/model"
	"github.com/and161185/flashdeck/internal/study"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Width(60)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// studyModel is the bubbletea model around a study.Session.
type studyModel struct {
	topic    string
	session  *study.Session
	revealed bool
	quit     bool
}

func newStudyModel(topic string, cards []model.Card, opts ...study.Option) studyModel {
	return studyModel{topic: topic, session: study.New(cards, opts...)}
}

func (m studyModel) Init() tea.Cmd { return nil }

func (m studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quit = true
		return m, tea.Quit
	}
	if m.session.State() == study.Complete {
		return m, tea.Quit
	}
	if !m.revealed {
		if k := key.String(); k == " " || k == "space" || k == "enter" {
			m.revealed = true
		}
		return m, nil
	}
	switch key.String() {
	case "y", "right", "1":
		m.session.Answer(true)
		m.revealed = false
	case "n", "left", "0":
		m.session.Answer(false)
		m.revealed = false
	}
	return m, nil
}

func (m studyModel) progress() string {
	mastered, total := m.session.Progress()
	const width = 20
	filled := 0
	if total > 0 {
		filled = mastered * width / total
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
	return progressStyle.Render(fmt.Sprintf("[%s] %d/%d mastered", bar, mastered, total))
}

// scoreboard renders one mastery cell per card; the presented card is bracketed.
func (m studyModel) scoreboard() string {
	cur := m.session.CurrentIndex()
	cells := make([]string, 0, len(m.session.Scores()))
	for i, score := range m.session.Scores() {
		cell := strings.Repeat("#", score) + strings.Repeat(".", study.MasteryThreshold-score)
		if i == cur {
			cell = "[" + cell + "]"
		}
		cells = append(cells, cell)
	}
	return hintStyle.Render(strings.Join(cells, " "))
}

func (m studyModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.topic))
	b.WriteString("\n")
	b.WriteString(m.progress())
	b.WriteString("\n")
	b.WriteString(m.scoreboard())
	b.WriteString("\n\n")

	card, ok := m.session.CurrentCard()
	if !ok {
		fmt.Fprintf(&b, "All cards mastered in %d answers.\n", m.session.Answered())
		b.WriteString(hintStyle.Render("press any key to exit"))
		return b.String()
	}
	body := card.Question
	if m.revealed {
		body += "\n\n" + answerStyle.Render(card.Answer)
	}
	b.WriteString(cardStyle.Render(body))
	b.WriteString("\n")
	if m.revealed {
		b.WriteString(hintStyle.Render("[y] knew it   [n] didn't   [q] quit"))
	} else {
		b.WriteString(hintStyle.Render("[space] show answer   [q] quit"))
	}
	return b.String()
}

func runStudyTUI(topic string, cards []model.Card) error {
	if len(cards) == 0 {
		return errors.New("study: deck has no cards")
	}
	final, err := tea.NewProgram(newStudyModel(topic, cards)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(studyModel); ok && m.session.State() == study.Complete {
		fmt.Printf("%s: %d cards mastered in %d answers\n", topic, len(cards), m.session.Answered())
	}
	return nil
}
