package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/patowari/tapuze-backend/evalsrvc"
)

type state int

const (
	stateGrading state = iota
	stateReview
)

type gradedMsg struct {
	eval evalsrvc.Evaluation
}

type gradeFailedMsg struct {
	err error
}

type model struct {
	state  state
	grader evalsrvc.Grader
	editor *evalsrvc.Editor
	cursor int
	err    error
}

func initialModel(grader evalsrvc.Grader) model {
	return model{
		state:  stateGrading,
		grader: grader,
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		eval, err := m.grader.Grade(context.Background(), []byte("demo homework"))
		if err != nil {
			return gradeFailedMsg{err: err}
		}
		return gradedMsg{eval: eval}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gradedMsg:
		m.editor = evalsrvc.NewEditor(msg.eval)
		m.state = stateReview
		return m, nil
	case gradeFailedMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if m.state != stateReview {
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		eval := m.editor.Evaluation()
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(eval.Problems)-1 {
				m.cursor++
			}
		case "+", "=":
			p := eval.Problems[m.cursor]
			if p.Score < p.MaxScore {
				m.err = m.editor.SetProblemScore(m.cursor, p.Score+1)
			}
		case "-", "_":
			p := eval.Problems[m.cursor]
			if p.Score > 0 {
				m.err = m.editor.SetProblemScore(m.cursor, p.Score-1)
			}
		case "p":
			m.editor.AddProblem()
			m.cursor = len(eval.Problems)
		case "e":
			m.err = m.editor.AddError(m.cursor)
		case "x":
			n := len(eval.Problems[m.cursor].Errors)
			if n > 0 {
				m.err = m.editor.RemoveError(m.cursor, n-1)
			}
		}
	}
	return m, nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

func (m model) View() string {
	if m.state == stateGrading {
		return titleStyle.Render("Tapuze evaluation demo") + "\n\n" +
			"AI is evaluating the submission...\n" +
			dimStyle.Render("press q to abort") + "\n"
	}

	eval := m.editor.Evaluation()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tapuze evaluation demo") + "\n\n")

	for i, p := range eval.Problems {
		desc := p.Description.EN
		if desc == "" {
			desc = fmt.Sprintf("Problem %d", i+1)
		}
		line := fmt.Sprintf("%s  %d/%d", desc, p.Score, p.MaxScore)
		if len(p.Errors) > 0 {
			line += dimStyle.Render(fmt.Sprintf("  (%d errors)", len(p.Errors)))
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + scoreStyle.Render(
		fmt.Sprintf("Overall score: %d/100", eval.OverallScore)) + "\n")

	if m.err != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("last error: %v", m.err)) + "\n")
	}

	b.WriteString(dimStyle.Render(
		"\n↑/↓ select problem · +/- adjust score · p add problem · " +
			"e add error · x remove error · q quit") + "\n")

	return b.String()
}
