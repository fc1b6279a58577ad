package evalsrvc

import "time"

// Language selects one side of a bilingual text field.
type Language string

const (
	LangEN Language = "en"
	LangHE Language = "he"
)

// BilingualText holds the English and Hebrew variants of a user-facing
// text field. Both sides are independent; editing one never touches the
// other.
type BilingualText struct {
	EN string `json:"en"`
	HE string `json:"he"`
}

func (t *BilingualText) Set(lang Language, text string) {
	switch lang {
	case LangHE:
		t.HE = text
	default:
		t.EN = text
	}
}

func (t BilingualText) Get(lang Language) string {
	if lang == LangHE {
		return t.HE
	}
	return t.EN
}

// SyncState tracks whether an evaluation applied to the local store has
// also reached the remote API. Local state is ground truth; a failed
// remote persist is recorded, never rolled back.
type SyncState string

const (
	SyncPending SyncState = "pending"
	SyncSynced  SyncState = "synced"
	SyncFailed  SyncState = "sync_failed"
)

type Evaluation struct {
	OverallScore int       `json:"overall_score"` // 0..100
	Problems     []Problem `json:"problem_breakdown"`
	EvaluatedAt  time.Time `json:"evaluated_at,omitempty"`

	Sync SyncState `json:"-"` // local bookkeeping, not part of the wire body
}

type Problem struct {
	Description    BilingualText  `json:"problem_description"`
	Score          int            `json:"score"`
	MaxScore       int            `json:"max_score"`
	Feedback       BilingualText  `json:"feedback"`
	Recommendation BilingualText  `json:"teacher_recommendation"`
	Errors         []ProblemError `json:"errors"`
}

// ProblemError is one recorded mistake inside a problem. Deduction is
// advisory for display; it is never subtracted from the problem score.
type ProblemError struct {
	Type        string        `json:"error_type"`
	Explanation BilingualText `json:"explanation"`
	Hint        BilingualText `json:"hint"`
	Deduction   int           `json:"deduction"`
	Box         *BoundingBox  `json:"boundingBox,omitempty"`
}

// BoundingBox locates an error on the submitted page, in fractions of the
// page size (0..1).
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clone returns a deep copy of the evaluation so that editor state never
// aliases a stored value.
func (e Evaluation) Clone() Evaluation {
	cp := e
	cp.Problems = make([]Problem, len(e.Problems))
	for i, p := range e.Problems {
		pc := p
		pc.Errors = make([]ProblemError, len(p.Errors))
		for j, pe := range p.Errors {
			ec := pe
			if pe.Box != nil {
				box := *pe.Box
				ec.Box = &box
			}
			pc.Errors[j] = ec
		}
		cp.Problems[i] = pc
	}
	return cp
}
