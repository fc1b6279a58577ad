package submsrvc

import (
	"net/http"

	"github.com/patowari/tapuze-backend/srvcerror"
)

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"submission was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNoFilesAttached = "no_files_attached"

func ErrNoFilesAttached() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoFilesAttached,
		"a submission needs at least one attached file",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeFileNotFound = "file_not_found"

func ErrFileNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFileNotFound,
		"attached file was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

func ErrInternal(err error) *srvcerror.Error {
	return srvcerror.ErrInternalSE().SetDebug(err)
}
