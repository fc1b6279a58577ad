package usersrvc

import (
	"fmt"
	"net/http"

	"github.com/patowari/tapuze-backend/srvcerror"
)

const ErrCodeEmailAlreadyExists = "email_exists"

func ErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailAlreadyExists,
		"a user with this email is already registered",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEmailInvalid = "email_invalid"

func ErrEmailInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailInvalid,
		"email address is not valid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNameEmpty = "name_empty"

func ErrNameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNameEmpty,
		"name must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordEmpty = "password_empty"

func ErrPasswordEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordEmpty,
		"password must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidRole = "invalid_role"

func ErrInvalidRole(role string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidRole,
		fmt.Sprintf("unknown role %q, expected student or lecturer", role),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNotLoggedIn = "not_logged_in"

func ErrNotLoggedIn() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotLoggedIn,
		"no active user session",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func ErrInternal(err error) *srvcerror.Error {
	return srvcerror.ErrInternalSE().SetDebug(err)
}

const ErrCodeUserNotFound = "user_not_found"

func ErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"user was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}
