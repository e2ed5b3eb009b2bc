package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/adjustment"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/checkin"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("load: %w", attendance.ErrAttendanceNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"invalid state", checkin.ErrRequestAlreadyProcessed, http.StatusBadRequest, "BAD_REQUEST"},
		{"validation", validator.ValidationErrors{{Field: "time", Message: "time is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"balance conflict", fmt.Errorf("apply: %w", employee.ErrBalanceConflict), http.StatusConflict, "CONFLICT"},
		{"duplicate auto row", adjustment.ErrDuplicateAutoRow, http.StatusConflict, "CONFLICT"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.status, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.code, body.Error.Code)
		})
	}
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "Marked absent", map[string]string{"attendance_id": "att-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Marked absent", body.Message)
	assert.Nil(t, body.Error)
}
