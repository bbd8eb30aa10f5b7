package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"autonews/domain"
	"autonews/handler"
	"autonews/service"
	"autonews/test/mocks"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRewriteHandler_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rewriter := mocks.NewMockRewriteService(ctrl)
	rewriter.EXPECT().
		ProcessPending(gomock.Any()).
		Return(&service.RewriteResult{ProcessedCount: 5, SuccessCount: 4, ErrorCount: 1, Errors: []error{assert.AnError}}, nil)

	h := handler.NewRewriteHandler(rewriter, testLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/admin/rewrite/process", "")

	require.NoError(t, h.Process(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(5), resp["processed"])
	assert.Equal(t, float64(4), resp["succeeded"])
	assert.Equal(t, float64(1), resp["failed"])
	assert.Equal(t, false, resp["deferred"])
	assert.Len(t, resp["errors"], 1)
}

func TestRewriteHandler_Rewrite(t *testing.T) {
	entryID := uuid.New()

	tests := map[string]struct {
		setupMock    func(m *mocks.MockRewriteService)
		body         string
		expectedCode int
		wantErr      bool
	}{
		"should rewrite entry": {
			setupMock: func(m *mocks.MockRewriteService) {
				m.EXPECT().RewriteEntry(gomock.Any(), entryID).Return(nil)
			},
			body:         `{"entry_id": "` + entryID.String() + `"}`,
			expectedCode: http.StatusOK,
		},
		"should reject non-uuid entry id": {
			setupMock:    func(m *mocks.MockRewriteService) {},
			body:         `{"entry_id": "not-a-uuid"}`,
			expectedCode: http.StatusBadRequest,
			wantErr:      true,
		},
		"should return 404 for unknown entry": {
			setupMock: func(m *mocks.MockRewriteService) {
				m.EXPECT().RewriteEntry(gomock.Any(), entryID).Return(domain.ErrEntryNotFound)
			},
			body:         `{"entry_id": "` + entryID.String() + `"}`,
			expectedCode: http.StatusNotFound,
			wantErr:      true,
		},
		"should return 503 when model is overloaded": {
			setupMock: func(m *mocks.MockRewriteService) {
				m.EXPECT().RewriteEntry(gomock.Any(), entryID).Return(domain.ErrServiceOverloaded)
			},
			body:         `{"entry_id": "` + entryID.String() + `"}`,
			expectedCode: http.StatusServiceUnavailable,
			wantErr:      true,
		},
		"should return 422 for state machine violations": {
			setupMock: func(m *mocks.MockRewriteService) {
				m.EXPECT().RewriteEntry(gomock.Any(), entryID).Return(assert.AnError)
			},
			body:         `{"entry_id": "` + entryID.String() + `"}`,
			expectedCode: http.StatusUnprocessableEntity,
			wantErr:      true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rewriter := mocks.NewMockRewriteService(ctrl)
			tc.setupMock(rewriter)

			h := handler.NewRewriteHandler(rewriter, testLogger())

			c, rec := newJSONContext(t, http.MethodPost, "/api/v1/admin/rewrite", tc.body)

			err := h.Rewrite(c)

			if tc.wantErr {
				require.Error(t, err)
				httpErr, ok := err.(*echo.HTTPError)
				require.True(t, ok)
				assert.Equal(t, tc.expectedCode, httpErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedCode, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, true, resp["rewritten"])
			assert.Equal(t, entryID.String(), resp["entry_id"])
		})
	}
}
