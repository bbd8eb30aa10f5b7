package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"autonews/domain"
	"autonews/handler"
	"autonews/test/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMonetizationHandler_Placements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monetization := mocks.NewMockMonetizationRepository(ctrl)
	monetization.EXPECT().
		PlacementsForSlot(gomock.Any(), "sidebar").
		Return([]*domain.AdPlacement{
			{ID: "ad-1", Name: "Sidebar banner", Slot: "sidebar", Snippet: "<div>ad</div>", IsActive: true},
		}, nil)

	h := handler.NewMonetizationHandler(monetization, testLogger())

	c, rec := newGetContext(t, "/api/v1/ads/sidebar")
	c.SetParamNames("slot")
	c.SetParamValues("sidebar")

	require.NoError(t, h.Placements(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sidebar", resp["slot"])
	assert.Len(t, resp["placements"], 1)
}

func TestMonetizationHandler_Click(t *testing.T) {
	link := &domain.AffiliateLink{
		ID:             "link-1",
		Name:           "Hosting partner",
		AffiliateURL:   "https://partner.example.com/?ref=autonews",
		PayoutPerClick: 0.25,
		IsActive:       true,
	}

	t.Run("should record click and redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monetization := mocks.NewMockMonetizationRepository(ctrl)
		monetization.EXPECT().FindActiveLink(gomock.Any(), "link-1").Return(link, nil)
		monetization.EXPECT().
			RecordClick(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, click *domain.AffiliateClick) error {
				assert.Equal(t, "link-1", click.AffiliateLinkID)
				assert.NotEmpty(t, click.IPAddress)
				return nil
			})

		h := handler.NewMonetizationHandler(monetization, testLogger())

		c, rec := newGetContext(t, "/api/v1/affiliate/click/link-1")
		c.SetParamNames("id")
		c.SetParamValues("link-1")

		require.NoError(t, h.Click(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, link.AffiliateURL, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("should redirect even when recording fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monetization := mocks.NewMockMonetizationRepository(ctrl)
		monetization.EXPECT().FindActiveLink(gomock.Any(), "link-1").Return(link, nil)
		monetization.EXPECT().RecordClick(gomock.Any(), gomock.Any()).Return(assert.AnError)

		h := handler.NewMonetizationHandler(monetization, testLogger())

		c, rec := newGetContext(t, "/api/v1/affiliate/click/link-1")
		c.SetParamNames("id")
		c.SetParamValues("link-1")

		require.NoError(t, h.Click(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, link.AffiliateURL, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("should return 404 for unknown link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monetization := mocks.NewMockMonetizationRepository(ctrl)
		monetization.EXPECT().FindActiveLink(gomock.Any(), "missing").Return(nil, domain.ErrAffiliateLinkNotFound)

		h := handler.NewMonetizationHandler(monetization, testLogger())

		c, _ := newGetContext(t, "/api/v1/affiliate/click/missing")
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := h.Click(c)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestMonetizationHandler_Revenue(t *testing.T) {
	t.Run("should report revenue for explicit range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

		monetization := mocks.NewMockMonetizationRepository(ctrl)
		monetization.EXPECT().
			Revenue(gomock.Any(), from, to).
			Return(&domain.RevenueReport{
				From:        from,
				To:          to,
				TotalClicks: 40,
				Total:       10.0,
				Links: []domain.LinkRevenue{
					{LinkID: "link-1", LinkName: "Hosting partner", Clicks: 40, Estimated: 10.0},
				},
			}, nil)

		h := handler.NewMonetizationHandler(monetization, testLogger())

		c, rec := newGetContext(t, "/api/v1/admin/revenue?from=2024-03-01T00:00:00Z&to=2024-04-01T00:00:00Z")

		require.NoError(t, h.Revenue(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.RevenueReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 40, resp.TotalClicks)
		assert.InDelta(t, 10.0, resp.Total, 0.001)
	})

	t.Run("should default to the last 30 days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monetization := mocks.NewMockMonetizationRepository(ctrl)
		monetization.EXPECT().
			Revenue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, from, to time.Time) (*domain.RevenueReport, error) {
				assert.InDelta(t, 30*24*time.Hour, to.Sub(from), float64(time.Minute))
				return &domain.RevenueReport{From: from, To: to}, nil
			})

		h := handler.NewMonetizationHandler(monetization, testLogger())

		c, rec := newGetContext(t, "/api/v1/admin/revenue")

		require.NoError(t, h.Revenue(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject malformed range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monetization := mocks.NewMockMonetizationRepository(ctrl)

		h := handler.NewMonetizationHandler(monetization, testLogger())

		c, _ := newGetContext(t, "/api/v1/admin/revenue?from=yesterday")

		err := h.Revenue(c)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("should reject inverted range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		monetization := mocks.NewMockMonetizationRepository(ctrl)

		h := handler.NewMonetizationHandler(monetization, testLogger())

		c, _ := newGetContext(t, "/api/v1/admin/revenue?from=2024-04-01T00:00:00Z&to=2024-03-01T00:00:00Z")

		err := h.Revenue(c)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
