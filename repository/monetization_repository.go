package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autonews/domain"
	"autonews/driver"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type monetizationRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewMonetizationRepository creates a new monetization repository.
func NewMonetizationRepository(db *pgxpool.Pool, logger *slog.Logger) MonetizationRepository {
	return &monetizationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *monetizationRepository) FindActiveLink(ctx context.Context, id string) (*domain.AffiliateLink, error) {
	link, err := driver.GetActiveAffiliateLink(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find affiliate link: %w", err)
	}

	return link, nil
}

// RecordClick stores a click-through before the redirect is issued.
func (r *monetizationRepository) RecordClick(ctx context.Context, click *domain.AffiliateClick) error {
	if click.ID == "" {
		click.ID = uuid.NewString()
	}

	if err := driver.InsertAffiliateClick(ctx, r.db, click); err != nil {
		r.logger.ErrorContext(ctx, "failed to record affiliate click",
			"error", err, "link_id", click.AffiliateLinkID)

		return fmt.Errorf("failed to record affiliate click: %w", err)
	}

	r.logger.InfoContext(ctx, "affiliate click recorded", "link_id", click.AffiliateLinkID)

	return nil
}

func (r *monetizationRepository) PlacementsForSlot(ctx context.Context, slot string) ([]*domain.AdPlacement, error) {
	placements, err := driver.ListAdPlacements(ctx, r.db, slot)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list ad placements", "error", err, "slot", slot)
		return nil, fmt.Errorf("failed to list ad placements: %w", err)
	}

	return placements, nil
}

func (r *monetizationRepository) Revenue(ctx context.Context, from, to time.Time) (*domain.RevenueReport, error) {
	report, err := driver.AggregateRevenue(ctx, r.db, from, to)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to aggregate revenue", "error", err)
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return report, nil
}
