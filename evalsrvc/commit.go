package evalsrvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/logger"
)

// LocalStore is the slice of the submission store that Commit needs:
// attach an evaluation to a submission, replacing any previous one.
type LocalStore interface {
	AttachEvaluation(ctx context.Context, submissionID uuid.UUID, eval Evaluation) error
}

// Commit writes the editor's current value to the local store and then
// attempts a best-effort remote persist. The local write is ground truth
// and already applied before the network call; a remote failure marks the
// stored evaluation sync_failed and is returned to the caller, it never
// rolls the local write back.
//
// remote may be nil when no remote API is configured; the stored
// evaluation then stays pending.
func (e *Editor) Commit(ctx context.Context, local LocalStore, remote RemotePersister, path EvalPath) (Evaluation, error) {
	log := logger.FromContext(ctx)

	eval := e.Evaluation()
	eval.EvaluatedAt = time.Now()
	eval.Sync = SyncPending

	if err := local.AttachEvaluation(ctx, path.SubmissionID, eval); err != nil {
		return Evaluation{}, err
	}

	if remote == nil {
		return eval, nil
	}

	if err := remote.SaveEvaluation(ctx, path, eval); err != nil {
		log.Warn("remote evaluation persist failed",
			"submission_id", path.SubmissionID, "error", err)
		eval.Sync = SyncFailed
		// record the failed sync; local value itself is unchanged
		if attachErr := local.AttachEvaluation(ctx, path.SubmissionID, eval); attachErr != nil {
			return eval, attachErr
		}
		return eval, err
	}

	eval.Sync = SyncSynced
	if err := local.AttachEvaluation(ctx, path.SubmissionID, eval); err != nil {
		return eval, err
	}

	log.Info("evaluation committed",
		"submission_id", path.SubmissionID, "overall_score", eval.OverallScore)
	return eval, nil
}
