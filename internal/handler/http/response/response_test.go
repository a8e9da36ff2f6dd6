package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tokosakti/backoffice-go/internal/domain/kpi"
	"github.com/tokosakti/backoffice-go/internal/domain/salary"
)

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 20, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(45), meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestNewMetaExactFit(t *testing.T) {
	assert.Equal(t, 2, NewMeta(1, 20, 40).TotalPages)
}

func TestNewMetaEmpty(t *testing.T) {
	meta := NewMeta(1, 20, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, int64(0), meta.TotalItems)
}

func TestHandleErrorStatusCodes(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
	}{
		"overlapping salary configuration": {salary.ErrOverlappingConfiguration, http.StatusConflict},
		"role not applicable":              {kpi.ErrRoleNotApplicable, http.StatusConflict},
		"definition not found":             {kpi.ErrDefinitionNotFound, http.StatusNotFound},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
