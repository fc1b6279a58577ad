package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/patowari/tapuze-backend/srvcerror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const ErrCodeInvalidRequest = "invalid_request"

func errInvalidRequest(msg string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidRequest,
		msg,
	).SetHttpStatusCode(http.StatusBadRequest)
}

// decodeAndValidate parses the JSON body into dst and checks its
// `validate` struct tags. Failures map to the invalid_request error kind.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidRequest("request body is not valid JSON").SetDebug(err)
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return errInvalidRequest(fmt.Sprintf(
				"field %s failed validation (%s)", first.Field(), first.Tag(),
			)).SetDebug(err)
		}
		return errInvalidRequest("request failed validation").SetDebug(err)
	}
	return nil
}

// urlUUID parses a chi URL parameter as a UUID.
func urlUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, errInvalidRequest(
			fmt.Sprintf("%s is not a valid id", param)).SetDebug(err)
	}
	return id, nil
}
