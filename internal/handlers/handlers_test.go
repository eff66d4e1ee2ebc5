package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFilterQuery_ToFilterSet(t *testing.T) {
	q := filterQuery{
		Status:  []string{"agendado, concluido", ""},
		Branch:  []string{"centro", "zona-sul"},
		Service: nil,
	}

	fs := q.toFilterSet()
	assert.Equal(t, []domain.Status{domain.StatusScheduled, domain.StatusCompleted}, fs.Status)
	assert.Equal(t, []string{"centro", "zona-sul"}, fs.BranchIDs)
	assert.Empty(t, fs.ServiceNames)
	assert.Equal(t, 2, fs.ActiveCount())
}

func TestParseDateInShop(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)

	d, err := parseDateInShop(brt, "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, brt), d)

	d, err = parseDateInShop(brt, "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = parseDateInShop(brt, "2024-13-01")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{httperr.ErrBusinessDetail("invalid_view", "mes"), http.StatusBadRequest, "invalid_view"},
		{httperr.ErrBusiness("duplicate_id"), http.StatusInternalServerError, "internal_error"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		writeError(c, tc.err)

		var body httperr.HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.status, w.Code)
		assert.Equal(t, tc.code, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}
