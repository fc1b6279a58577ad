package evalsrvc

import (
	"testing"

	"github.com/patowari/tapuze-backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSrvcErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}
