package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dom/champion-stats/internal/api/handlers"
	"github.com/dom/champion-stats/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociationHandler_UpsertBuildRemove(t *testing.T) {
	ts := testutil.NewTestServer(t)

	champion := testutil.NewChampionBuilder().Build(t, ts.DB.DB)
	boots := testutil.NewItemBuilder().WithName("Boots").Build(t, ts.DB.DB)
	blade := testutil.NewItemBuilder().WithName("Blade").Build(t, ts.DB.DB)

	itemURL := func(itemID uint) string {
		return ts.APIURL(fmt.Sprintf("/champions/%d/items/%d", champion.ID, itemID))
	}

	resp := testutil.Do(t, testutil.NewJSONRequest(t, http.MethodPut, itemURL(boots.ID), map[string]float64{"usagePercentage": 5}))
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var first handlers.UpsertChampionItemResponse
	testutil.AssertJSONResponse(t, resp, &first)

	resp = testutil.Do(t, testutil.NewJSONRequest(t, http.MethodPut, itemURL(boots.ID), map[string]float64{"usagePercentage": 9}))
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var second handlers.UpsertChampionItemResponse
	testutil.AssertJSONResponse(t, resp, &second)
	assert.Equal(t, first.ID, second.ID)

	resp = testutil.Do(t, testutil.NewJSONRequest(t, http.MethodPut, itemURL(blade.ID), map[string]float64{"usagePercentage": 40}))
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	resp = testutil.Do(t, testutil.NewJSONRequest(t, http.MethodPut, itemURL(9999), map[string]float64{"usagePercentage": 1}))
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)

	resp = testutil.Do(t, testutil.NewJSONRequest(t, http.MethodGet, ts.APIURL(fmt.Sprintf("/champions/%d/build", champion.ID)), nil))
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var build handlers.BuildResponse
	testutil.AssertJSONResponse(t, resp, &build)
	require.Len(t, build.Build, 2)
	assert.Equal(t, "Blade", build.Build[0].Item.Name)
	assert.Equal(t, 9.0, build.Build[1].UsagePercentage)

	resp = testutil.Do(t, testutil.NewJSONRequest(t, http.MethodDelete, itemURL(boots.ID), nil))
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)
	resp = testutil.Do(t, testutil.NewJSONRequest(t, http.MethodDelete, itemURL(boots.ID), nil))
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)
}
