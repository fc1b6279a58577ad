package classroomsrvc

import (
	"net/http"

	"github.com/patowari/tapuze-backend/srvcerror"
)

const ErrCodeClassroomNameExists = "classroom_name_exists"

func ErrClassroomNameExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeClassroomNameExists,
		"a classroom with this name already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeClassroomCodeExists = "classroom_code_exists"

func ErrClassroomCodeExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeClassroomCodeExists,
		"a classroom with this code already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeClassroomNameEmpty = "classroom_name_empty"

func ErrClassroomNameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeClassroomNameEmpty,
		"classroom name must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeClassroomCodeEmpty = "classroom_code_empty"

func ErrClassroomCodeEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeClassroomCodeEmpty,
		"classroom join code must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeClassroomNotFound = "classroom_not_found"

func ErrClassroomNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeClassroomNotFound,
		"classroom was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAssignmentNotFound = "assignment_not_found"

func ErrAssignmentNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAssignmentNotFound,
		"assignment was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAssignmentTitleEmpty = "assignment_title_empty"

func ErrAssignmentTitleEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAssignmentTitleEmpty,
		"assignment title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}
