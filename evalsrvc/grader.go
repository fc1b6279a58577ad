package evalsrvc

import (
	"context"
	"time"
)

// Grader produces an evaluation from raw submission file content.
type Grader interface {
	Grade(ctx context.Context, content []byte) (Evaluation, error)
}

// MockAIGrader stands in for a real grading model. It returns a canned
// bilingual breakdown after a simulated processing delay. The submitted
// content only needs to be non-empty to keep callers honest.
type MockAIGrader struct {
	Delay time.Duration
}

func NewMockAIGrader() *MockAIGrader {
	return &MockAIGrader{Delay: 2 * time.Second}
}

func (g *MockAIGrader) Grade(ctx context.Context, content []byte) (Evaluation, error) {
	select {
	case <-time.After(g.Delay):
	case <-ctx.Done():
		return Evaluation{}, ctx.Err()
	}

	problems := []Problem{
		{
			Description: BilingualText{
				EN: "Problem 1: Basic Calculation",
				HE: "שאלה 1: חישוב בסיסי",
			},
			Score:    20,
			MaxScore: 25,
			Feedback: BilingualText{
				EN: "Good work on the basic calculation, but there are some minor errors.",
				HE: "עבודה טובה על החישוב הבסיסי, אך יש כמה שגיאות קטנות.",
			},
			Recommendation: BilingualText{
				EN: "Review the calculation steps carefully.",
				HE: "בדוק את שלבי החישוב בקפידה.",
			},
			Errors: []ProblemError{
				{
					Type:      "minor_slip",
					Deduction: 5,
					Explanation: BilingualText{
						EN: "Minor calculation error in step 2.",
						HE: "שגיאת חישוב קטנה בשלב 2.",
					},
					Hint: BilingualText{
						EN: "Double-check your arithmetic.",
						HE: "בדוק שוב את החשבון שלך.",
					},
					Box: &BoundingBox{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.1},
				},
			},
		},
		{
			Description: BilingualText{
				EN: "Problem 2: Word Problem",
				HE: "שאלה 2: בעיית מילים",
			},
			Score:    22,
			MaxScore: 25,
			Feedback: BilingualText{
				EN: "Excellent understanding of the word problem.",
				HE: "הבנה מעולה של בעיית המילים.",
			},
			Recommendation: BilingualText{
				EN: "Keep up the good work!",
				HE: "המשך בעבודה הטובה!",
			},
			Errors: []ProblemError{},
		},
	}

	return Evaluation{
		OverallScore: OverallScore(problems),
		Problems:     problems,
		EvaluatedAt:  time.Now(),
	}, nil
}
