// evaldemo is a terminal walkthrough of the evaluation editor: it runs
// the mock AI grader over a pretend homework file and lets you adjust the
// problem breakdown while watching the overall score re-derive.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/patowari/tapuze-backend/evalsrvc"
)

func main() {
	grader := &evalsrvc.MockAIGrader{Delay: 800 * time.Millisecond}
	p := tea.NewProgram(initialModel(grader))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "evaldemo failed: %v\n", err)
		os.Exit(1)
	}
}
