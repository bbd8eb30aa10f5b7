// ABOUTME: This file imports manually uploaded JSON and CSV content batches
// ABOUTME: A row missing a required field rejects the whole batch before anything is enqueued
package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"autonews/config"
	"autonews/domain"
	"autonews/repository"
)

const (
	uploadKindJSON = "json"
	uploadKindCSV  = "csv"
)

type uploadService struct {
	queueRepo repository.QueueRepository
	config    *config.IngestConfig
	logger    *slog.Logger
}

// NewUploadService creates the manual import service.
func NewUploadService(queueRepo repository.QueueRepository, cfg *config.IngestConfig, logger *slog.Logger) UploadService {
	return &uploadService{
		queueRepo: queueRepo,
		config:    cfg,
		logger:    logger,
	}
}

// ImportJSON imports an uploaded JSON array of records. Field names are
// matched through the accepted aliases.
func (s *uploadService) ImportJSON(ctx context.Context, r io.Reader) (*UploadResult, error) {
	var rawRows []map[string]any

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&rawRows); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidUpload, err)
	}

	rows := make([]map[string]string, 0, len(rawRows))

	for _, raw := range rawRows {
		row := make(map[string]string, len(raw))

		for key, value := range raw {
			switch v := value.(type) {
			case string:
				row[key] = v
			case float64:
				row[key] = fmt.Sprintf("%v", v)
			case bool:
				row[key] = fmt.Sprintf("%t", v)
			}
		}

		rows = append(rows, row)
	}

	return s.importRows(ctx, rows, uploadKindJSON)
}

// ImportCSV imports an uploaded CSV file. The first record is the header;
// its column names are matched through the accepted aliases.
func (s *uploadService) ImportCSV(ctx context.Context, r io.Reader) (*UploadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidUpload, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%w: file has no data rows", domain.ErrInvalidUpload)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(map[string]string, len(header))

		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}

		rows = append(rows, row)
	}

	return s.importRows(ctx, rows, uploadKindCSV)
}

// importRows validates every row before enqueueing any of them, so a
// rejected batch leaves no partial import behind.
func (s *uploadService) importRows(ctx context.Context, rows []map[string]string, kind string) (*UploadResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: batch is empty", domain.ErrInvalidUpload)
	}

	if len(rows) > s.config.MaxUploadRows {
		return nil, fmt.Errorf("%w: batch has %d rows, limit is %d",
			domain.ErrInvalidUpload, len(rows), s.config.MaxUploadRows)
	}

	items := make([]*domain.FeedItem, 0, len(rows))

	for i, row := range rows {
		item, err := NormalizeUploadRow(row, i+1)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	result := &UploadResult{RowCount: len(items)}

	for _, item := range items {
		entry := &domain.QueueEntry{
			SourceType: domain.SourceTypeManual,
			SourceData: domain.SourcePayload{
				Normalized: item,
				UploadKind: kind,
			},
		}

		if err := s.queueRepo.Enqueue(ctx, entry); err != nil {
			return result, fmt.Errorf("failed to enqueue row: %w", err)
		}

		result.Enqueued++
	}

	s.logger.InfoContext(ctx, "upload imported",
		"kind", kind,
		"rows", result.RowCount,
		"enqueued", result.Enqueued)

	return result, nil
}
