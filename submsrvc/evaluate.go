package submsrvc

import (
	"context"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/evalsrvc"
	"github.com/patowari/tapuze-backend/logger"
)

// AttachEvaluation stores the evaluation on the submission and moves its
// status to "evaluated". Replacing an existing evaluation is allowed; an
// unknown submission id is an explicit error, never a silent no-op.
func (s *SubmissionSrvc) AttachEvaluation(ctx context.Context, submissionID uuid.UUID, eval evalsrvc.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.subms {
		if s.subms[i].ID == submissionID {
			cp := eval.Clone()
			s.subms[i].Evaluation = &cp
			s.subms[i].Status = StatusEvaluated

			logger.FromContext(ctx).Info("evaluation attached",
				"submission_id", submissionID,
				"overall_score", eval.OverallScore, "sync", eval.Sync)
			return nil
		}
	}
	return ErrSubmissionNotFound()
}

// Evaluation returns the submission's evaluation, nil when it has none
// yet, or a not-found error when the submission id is unknown.
func (s *SubmissionSrvc) Evaluation(ctx context.Context, submissionID uuid.UUID) (*evalsrvc.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.subms {
		if s.subms[i].ID == submissionID {
			if s.subms[i].Evaluation == nil {
				return nil, nil
			}
			cp := s.subms[i].Evaluation.Clone()
			return &cp, nil
		}
	}
	return nil, ErrSubmissionNotFound()
}
