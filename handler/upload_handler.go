package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"autonews/domain"
	"autonews/service"

	"github.com/labstack/echo/v4"
)

// UploadHandler accepts manual article batches in JSON or CSV form.
type UploadHandler struct {
	uploads service.UploadService
	logger  *slog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploads service.UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploads: uploads,
		logger:  logger,
	}
}

// Upload handles POST /api/v1/admin/upload. The batch arrives either as a
// multipart "file" part or as a raw JSON request body.
func (h *UploadHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	reader, isCSV, closeFn, err := h.openUpload(c)
	if err != nil {
		return err
	}
	defer closeFn()

	var result *service.UploadResult

	if isCSV {
		result, err = h.uploads.ImportCSV(ctx, reader)
	} else {
		result, err = h.uploads.ImportJSON(ctx, reader)
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUpload), errors.Is(err, domain.ErrMissingRequiredField):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			h.logger.ErrorContext(ctx, "upload import failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to import upload")
		}
	}

	h.logger.InfoContext(ctx, "upload accepted", "rows", result.RowCount, "enqueued", result.Enqueued)

	return c.JSON(http.StatusOK, result)
}

// openUpload picks the upload payload source and its format. Multipart files
// are classified by extension, raw bodies by Content-Type.
func (h *UploadHandler) openUpload(c echo.Context) (io.Reader, bool, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return nil, false, nil, echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		switch ext {
		case ".csv":
			return file, true, func() { file.Close() }, nil
		case ".json":
			return file, false, func() { file.Close() }, nil
		default:
			file.Close()
			return nil, false, nil, echo.NewHTTPError(http.StatusBadRequest, "unsupported file type, expected .csv or .json")
		}
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	isCSV := strings.HasPrefix(contentType, "text/csv")

	return c.Request().Body, isCSV, func() {}, nil
}
