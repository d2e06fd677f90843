package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createReq struct {
	ServiceName string `json:"serviceName" validate:"required"`
	Replicas    int    `json:"replicas" validate:"min=1"`
}

func TestValidatorRequestStructAndErrorResponse(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"serviceName":"web","replicas":3}`))
	w := httptest.NewRecorder()
	var req createReq
	assert.True(t, ValidatorRequestStructAndErrorResponse(r, w, &req, nil))
	assert.Equal(t, "web", req.ServiceName)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"replicas":0}`))
	w = httptest.NewRecorder()
	req = createReq{}
	assert.False(t, ValidatorRequestStructAndErrorResponse(r, w, &req, nil))
	assert.Equal(t, 400, w.Code)

	body, err := ParseResponseBody(w.Result().Body)
	require.NoError(t, err)
	assert.Len(t, body.ValidationError["ServiceName"], 1)
	assert.Len(t, body.ValidationError["Replicas"], 1)
}

func TestValidatorRequestStructAndErrorResponseBadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{`))
	w := httptest.NewRecorder()
	var req createReq
	assert.False(t, ValidatorRequestStructAndErrorResponse(r, w, &req, nil))
	assert.Equal(t, 400, w.Code)
}

func TestReturnList(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	ReturnList(r, w, []string{"a", "b"})
	assert.Equal(t, 200, w.Code)

	body, err := ParseResponseBody(w.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b"}, body.List)
}
