package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"autonews/domain"
	"autonews/handler"
	"autonews/test/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestHandler_FetchSource(t *testing.T) {
	t.Run("should fetch source on demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingest := mocks.NewMockIngestService(ctrl)
		ingest.EXPECT().
			FetchSource(gomock.Any(), "src-1").
			Return(&domain.FetchOutcome{SourceID: "src-1", Status: domain.FetchProcessed, Enqueued: 4}, nil)

		h := handler.NewIngestHandler(ingest, testLogger())

		c, rec := newJSONContext(t, http.MethodPost, "/api/v1/admin/ingest/sources/src-1/fetch", "")
		c.SetParamNames("id")
		c.SetParamValues("src-1")

		require.NoError(t, h.FetchSource(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.FetchOutcome
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domain.FetchProcessed, resp.Status)
		assert.Equal(t, 4, resp.Enqueued)
	})

	t.Run("should return 404 for unknown source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingest := mocks.NewMockIngestService(ctrl)
		ingest.EXPECT().
			FetchSource(gomock.Any(), "missing").
			Return(nil, domain.ErrSourceNotFound)

		h := handler.NewIngestHandler(ingest, testLogger())

		c, _ := newJSONContext(t, http.MethodPost, "/api/v1/admin/ingest/sources/missing/fetch", "")
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := h.FetchSource(c)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestIngestHandler_FetchAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingest := mocks.NewMockIngestService(ctrl)
	ingest.EXPECT().
		FetchAllDue(gomock.Any()).
		Return([]domain.FetchOutcome{
			{SourceID: "src-1", Status: domain.FetchProcessed, Enqueued: 3},
			{SourceID: "src-2", Status: domain.FetchSkipped, Reason: domain.SkipReasonTooRecent},
			{SourceID: "src-3", Status: domain.FetchErrored, Error: "connection refused"},
		}, nil)

	h := handler.NewIngestHandler(ingest, testLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/admin/ingest/fetch", "")

	require.NoError(t, h.FetchAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(3), resp["sources"])
	assert.Equal(t, float64(3), resp["enqueued"])
	assert.Equal(t, float64(1), resp["skipped_sources"])
	assert.Equal(t, float64(1), resp["errored_sources"])
}
