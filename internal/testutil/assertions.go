package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/dom/champion-stats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse verifies error response with expected status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	// Error responses are plain text in this API
	assert.Contains(t, string(body), expectedMessage, "error message mismatch")
}

// AssertChampionIDs verifies the champions appear in exactly this order
func AssertChampionIDs(t *testing.T, champions []*domain.Champion, expected ...uint) {
	t.Helper()

	got := make([]uint, len(champions))
	for i, c := range champions {
		got[i] = c.ID
	}
	if expected == nil {
		expected = []uint{}
	}
	assert.Equal(t, expected, got, "unexpected champion order")
}

// AssertItemIDs verifies the items appear in exactly this order
func AssertItemIDs(t *testing.T, items []*domain.Item, expected ...uint) {
	t.Helper()

	got := make([]uint, len(items))
	for i, it := range items {
		got[i] = it.ID
	}
	if expected == nil {
		expected = []uint{}
	}
	assert.Equal(t, expected, got, "unexpected item order")
}
