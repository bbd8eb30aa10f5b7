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

func publishedArticle(id, slug string, createdAt time.Time) *domain.Article {
	return &domain.Article{
		ID:          id,
		Title:       "Sample Story",
		Slug:        slug,
		Content:     "<p>Body</p>",
		Excerpt:     "Body...",
		SourceURL:   "https://news.example.com/" + slug,
		SourceName:  "Example News",
		IsPublished: true,
		CreatedAt:   createdAt,
	}
}

func TestArticleHandler_List(t *testing.T) {
	techID := "cat-tech"

	tests := map[string]struct {
		setupMock    func(a *mocks.MockArticleRepository, c *mocks.MockCategoryRepository)
		query        string
		expectedCode int
		wantErr      bool
		validateResp func(t *testing.T, resp map[string]any)
	}{
		"should list published articles": {
			setupMock: func(a *mocks.MockArticleRepository, c *mocks.MockCategoryRepository) {
				a.EXPECT().
					ListPublished(gomock.Any(), nil, nil, 50).
					Return([]*domain.Article{
						publishedArticle("a-1", "first-story", time.Now()),
						publishedArticle("a-2", "second-story", time.Now()),
					}, nil)
			},
			expectedCode: http.StatusOK,
			validateResp: func(t *testing.T, resp map[string]any) {
				articles := resp["articles"].([]any)
				assert.Len(t, articles, 2)
				// Page smaller than the limit carries no cursor.
				assert.NotContains(t, resp, "next_cursor")
			},
		},
		"should emit cursor when page is full": {
			setupMock: func(a *mocks.MockArticleRepository, c *mocks.MockCategoryRepository) {
				a.EXPECT().
					ListPublished(gomock.Any(), nil, nil, 2).
					Return([]*domain.Article{
						publishedArticle("a-1", "first-story", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
						publishedArticle("a-2", "second-story", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
					}, nil)
			},
			query:        "?limit=2",
			expectedCode: http.StatusOK,
			validateResp: func(t *testing.T, resp map[string]any) {
				cursor := resp["next_cursor"].(map[string]any)
				assert.Equal(t, "a-2", cursor["last_id"])
				assert.Equal(t, "2024-03-01T09:00:00Z", cursor["last_created_at"])
			},
		},
		"should resolve category slug filter": {
			setupMock: func(a *mocks.MockArticleRepository, c *mocks.MockCategoryRepository) {
				c.EXPECT().
					FindBySlug(gomock.Any(), "technology").
					Return(&domain.Category{ID: techID, Name: "Technology", Slug: "technology", IsActive: true}, nil)
				a.EXPECT().
					ListPublished(gomock.Any(), gomock.Any(), nil, 50).
					DoAndReturn(func(_ any, categoryID *string, _ *domain.Cursor, _ int) ([]*domain.Article, error) {
						require.NotNil(t, categoryID)
						assert.Equal(t, techID, *categoryID)
						return []*domain.Article{}, nil
					})
			},
			query:        "?category=technology",
			expectedCode: http.StatusOK,
			validateResp: func(t *testing.T, resp map[string]any) {
				assert.Empty(t, resp["articles"])
			},
		},
		"should return 404 for unknown category": {
			setupMock: func(a *mocks.MockArticleRepository, c *mocks.MockCategoryRepository) {
				c.EXPECT().
					FindBySlug(gomock.Any(), "nope").
					Return(nil, nil)
			},
			query:        "?category=nope",
			expectedCode: http.StatusNotFound,
			wantErr:      true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			articleRepo := mocks.NewMockArticleRepository(ctrl)
			categoryRepo := mocks.NewMockCategoryRepository(ctrl)
			tc.setupMock(articleRepo, categoryRepo)

			h := handler.NewArticleHandler(articleRepo, categoryRepo, testLogger())

			c, rec := newGetContext(t, "/api/v1/articles"+tc.query)

			err := h.List(c)

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
			tc.validateResp(t, resp)
		})
	}
}

func TestArticleHandler_Get(t *testing.T) {
	t.Run("should return article and bump view count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		articleRepo := mocks.NewMockArticleRepository(ctrl)
		categoryRepo := mocks.NewMockCategoryRepository(ctrl)

		article := publishedArticle("a-1", "first-story", time.Now())
		articleRepo.EXPECT().FindPublishedBySlug(gomock.Any(), "first-story").Return(article, nil)
		articleRepo.EXPECT().IncrementViews(gomock.Any(), "a-1").Return(nil)

		h := handler.NewArticleHandler(articleRepo, categoryRepo, testLogger())

		c, rec := newGetContext(t, "/api/v1/articles/first-story")
		c.SetParamNames("slug")
		c.SetParamValues("first-story")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "first-story", resp["slug"])
	})

	t.Run("should still serve article when view count update fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		articleRepo := mocks.NewMockArticleRepository(ctrl)
		categoryRepo := mocks.NewMockCategoryRepository(ctrl)

		article := publishedArticle("a-1", "first-story", time.Now())
		articleRepo.EXPECT().FindPublishedBySlug(gomock.Any(), "first-story").Return(article, nil)
		articleRepo.EXPECT().IncrementViews(gomock.Any(), "a-1").Return(assert.AnError)

		h := handler.NewArticleHandler(articleRepo, categoryRepo, testLogger())

		c, rec := newGetContext(t, "/api/v1/articles/first-story")
		c.SetParamNames("slug")
		c.SetParamValues("first-story")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should return 404 for unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		articleRepo := mocks.NewMockArticleRepository(ctrl)
		categoryRepo := mocks.NewMockCategoryRepository(ctrl)

		articleRepo.EXPECT().FindPublishedBySlug(gomock.Any(), "missing").Return(nil, domain.ErrArticleNotFound)

		h := handler.NewArticleHandler(articleRepo, categoryRepo, testLogger())

		c, _ := newGetContext(t, "/api/v1/articles/missing")
		c.SetParamNames("slug")
		c.SetParamValues("missing")

		err := h.Get(c)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestArticleHandler_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	categoryRepo := mocks.NewMockCategoryRepository(ctrl)

	categoryRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.Category{
		{ID: "cat-tech", Name: "Technology", Slug: "technology", IsActive: true},
	}, nil)

	h := handler.NewArticleHandler(articleRepo, categoryRepo, testLogger())

	c, rec := newGetContext(t, "/api/v1/categories")

	require.NoError(t, h.Categories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["categories"], 1)
}

func TestArticleHandler_Publish(t *testing.T) {
	t.Run("should publish article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		articleRepo := mocks.NewMockArticleRepository(ctrl)
		categoryRepo := mocks.NewMockCategoryRepository(ctrl)

		articleRepo.EXPECT().Publish(gomock.Any(), "a-1").Return(nil)

		h := handler.NewArticleHandler(articleRepo, categoryRepo, testLogger())

		c, rec := newJSONContext(t, http.MethodPost, "/api/v1/admin/articles/a-1/publish", "")
		c.SetParamNames("id")
		c.SetParamValues("a-1")

		require.NoError(t, h.Publish(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["published"])
	})

	t.Run("should return 404 for unknown article", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		articleRepo := mocks.NewMockArticleRepository(ctrl)
		categoryRepo := mocks.NewMockCategoryRepository(ctrl)

		articleRepo.EXPECT().Publish(gomock.Any(), "missing").Return(domain.ErrArticleNotFound)

		h := handler.NewArticleHandler(articleRepo, categoryRepo, testLogger())

		c, _ := newJSONContext(t, http.MethodPost, "/api/v1/admin/articles/missing/publish", "")
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := h.Publish(c)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}
