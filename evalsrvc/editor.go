package evalsrvc

// Editor holds one evaluation value scoped to a single review session.
// Edits are applied in place; nothing reaches the submission store until
// Commit. The editor is not safe for concurrent use: one review session
// has exactly one editor.
type Editor struct {
	eval Evaluation
}

// NewEditor starts an editing session over a copy of eval.
func NewEditor(eval Evaluation) *Editor {
	return &Editor{eval: eval.Clone()}
}

// NewEmptyEditor starts a session with a blank evaluation and no problems.
func NewEmptyEditor() *Editor {
	return &Editor{eval: Evaluation{Problems: []Problem{}}}
}

// Evaluation returns a snapshot of the current value.
func (e *Editor) Evaluation() Evaluation {
	return e.eval.Clone()
}

func (e *Editor) problem(i int) (*Problem, error) {
	if i < 0 || i >= len(e.eval.Problems) {
		return nil, ErrProblemNotFound(i)
	}
	return &e.eval.Problems[i], nil
}

func (e *Editor) errorEntry(pi, ei int) (*ProblemError, error) {
	p, err := e.problem(pi)
	if err != nil {
		return nil, err
	}
	if ei < 0 || ei >= len(p.Errors) {
		return nil, ErrErrorEntryNotFound(pi, ei)
	}
	return &p.Errors[ei], nil
}

func (e *Editor) recompute() {
	e.eval.OverallScore = OverallScore(e.eval.Problems)
}

func (e *Editor) SetProblemScore(i int, score int) error {
	p, err := e.problem(i)
	if err != nil {
		return err
	}
	if score < 0 {
		return ErrNegativeScore()
	}
	p.Score = score
	e.recompute()
	return nil
}

func (e *Editor) SetProblemMaxScore(i int, maxScore int) error {
	p, err := e.problem(i)
	if err != nil {
		return err
	}
	if maxScore < 0 {
		return ErrNegativeScore()
	}
	p.MaxScore = maxScore
	e.recompute()
	return nil
}

func (e *Editor) SetProblemDescription(i int, lang Language, text string) error {
	p, err := e.problem(i)
	if err != nil {
		return err
	}
	p.Description.Set(lang, text)
	return nil
}

func (e *Editor) SetProblemFeedback(i int, lang Language, text string) error {
	p, err := e.problem(i)
	if err != nil {
		return err
	}
	p.Feedback.Set(lang, text)
	return nil
}

func (e *Editor) SetProblemRecommendation(i int, lang Language, text string) error {
	p, err := e.problem(i)
	if err != nil {
		return err
	}
	p.Recommendation.Set(lang, text)
	return nil
}

func (e *Editor) SetErrorType(pi, ei int, errorType string) error {
	entry, err := e.errorEntry(pi, ei)
	if err != nil {
		return err
	}
	entry.Type = errorType
	return nil
}

// SetErrorDeduction records the advisory point deduction. It does not
// touch the problem score or the overall score.
func (e *Editor) SetErrorDeduction(pi, ei int, deduction int) error {
	entry, err := e.errorEntry(pi, ei)
	if err != nil {
		return err
	}
	entry.Deduction = deduction
	return nil
}

func (e *Editor) SetErrorExplanation(pi, ei int, lang Language, text string) error {
	entry, err := e.errorEntry(pi, ei)
	if err != nil {
		return err
	}
	entry.Explanation.Set(lang, text)
	return nil
}

func (e *Editor) SetErrorHint(pi, ei int, lang Language, text string) error {
	entry, err := e.errorEntry(pi, ei)
	if err != nil {
		return err
	}
	entry.Hint.Set(lang, text)
	return nil
}

func (e *Editor) SetErrorBox(pi, ei int, box *BoundingBox) error {
	entry, err := e.errorEntry(pi, ei)
	if err != nil {
		return err
	}
	if box != nil {
		cp := *box
		entry.Box = &cp
	} else {
		entry.Box = nil
	}
	return nil
}

// AddProblem appends a fresh problem with zero score and a default max
// score, then recomputes the overall score.
func (e *Editor) AddProblem() {
	e.eval.Problems = append(e.eval.Problems, Problem{
		MaxScore: defaultMaxScore,
		Errors:   []ProblemError{},
	})
	e.recompute()
}

const defaultMaxScore = 10

// AddError appends a placeholder error entry to the problem.
func (e *Editor) AddError(pi int) error {
	p, err := e.problem(pi)
	if err != nil {
		return err
	}
	p.Errors = append(p.Errors, newPlaceholderError())
	return nil
}

func newPlaceholderError() ProblemError {
	return ProblemError{
		Type:      "custom",
		Deduction: 1,
		Explanation: BilingualText{
			EN: "New error",
			HE: "שגיאה חדשה",
		},
		Hint: BilingualText{
			EN: "Add a hint for the student",
			HE: "הוסף רמז לתלמיד",
		},
	}
}

func (e *Editor) RemoveError(pi, ei int) error {
	p, err := e.problem(pi)
	if err != nil {
		return err
	}
	if ei < 0 || ei >= len(p.Errors) {
		return ErrErrorEntryNotFound(pi, ei)
	}
	p.Errors = append(p.Errors[:ei], p.Errors[ei+1:]...)
	return nil
}

// SetOverallScore overrides the derived total, e.g. for a flat manual
// grade with no breakdown. A later score or max-score edit re-derives it.
func (e *Editor) SetOverallScore(score int) error {
	if score < 0 || score > 100 {
		return ErrScoreOutOfRange()
	}
	e.eval.OverallScore = score
	return nil
}
