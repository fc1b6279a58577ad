package evalsrvc

import (
	"fmt"
	"net/http"

	"github.com/patowari/tapuze-backend/srvcerror"
)

const ErrCodeProblemNotFound = "problem_not_found"

func ErrProblemNotFound(index int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		fmt.Sprintf("problem %d does not exist in this evaluation", index),
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeErrorEntryNotFound = "error_entry_not_found"

func ErrErrorEntryNotFound(problemIndex, errorIndex int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeErrorEntryNotFound,
		fmt.Sprintf("error %d does not exist in problem %d", errorIndex, problemIndex),
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeScoreOutOfRange = "score_out_of_range"

func ErrScoreOutOfRange() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeScoreOutOfRange,
		"overall score must be between 0 and 100",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNegativeScore = "negative_score"

func ErrNegativeScore() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNegativeScore,
		"problem scores cannot be negative",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEvalSaveFailed = "evaluation_save_failed"

func ErrEvalSaveFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEvalSaveFailed,
		"failed to save evaluation, please try again",
	).SetHttpStatusCode(http.StatusBadGateway)
}
