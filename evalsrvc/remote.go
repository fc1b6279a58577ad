package evalsrvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// EvalPath identifies where an evaluation lives in the remote API.
type EvalPath struct {
	ClassroomID  uuid.UUID
	AssignmentID uuid.UUID
	SubmissionID uuid.UUID
}

// RemotePersister pushes an evaluation to the remote API. Best effort:
// callers never retry and never roll back local state on failure.
type RemotePersister interface {
	SaveEvaluation(ctx context.Context, path EvalPath, eval Evaluation) error
}

// HTTPPersister persists evaluations over HTTP:
// PUT {base}/classrooms/{c}/assignments/{a}/submissions/{s}/evaluation.
// Any 2xx is success, the response body is ignored. No timeout is set;
// cancellation comes from the caller's context.
type HTTPPersister struct {
	baseUrl string
	client  *http.Client
}

func NewHTTPPersister(baseUrl string) *HTTPPersister {
	return &HTTPPersister{
		baseUrl: baseUrl,
		client:  &http.Client{},
	}
}

func (p *HTTPPersister) SaveEvaluation(ctx context.Context, path EvalPath, eval Evaluation) error {
	body, err := json.Marshal(eval)
	if err != nil {
		return ErrEvalSaveFailed().SetDebug(err)
	}

	url := fmt.Sprintf("%s/classrooms/%s/assignments/%s/submissions/%s/evaluation",
		p.baseUrl, path.ClassroomID, path.AssignmentID, path.SubmissionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return ErrEvalSaveFailed().SetDebug(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return ErrEvalSaveFailed().SetDebug(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrEvalSaveFailed().SetDebug(
			fmt.Errorf("remote responded with status %d", resp.StatusCode))
	}

	return nil
}
