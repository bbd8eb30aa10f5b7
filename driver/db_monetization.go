package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autonews/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GetActiveAffiliateLink fetches an active affiliate link for the click
// redirect. Inactive links are treated the same as missing ones.
func GetActiveAffiliateLink(ctx context.Context, db *pgxpool.Pool, id string) (*domain.AffiliateLink, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT id, name, affiliate_url, payout_per_click, is_active, created_at
		FROM affiliate_links
		WHERE id = $1 AND is_active = true
	`

	var l domain.AffiliateLink

	err := db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.AffiliateURL, &l.PayoutPerClick, &l.IsActive, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAffiliateLinkNotFound
		}

		return nil, fmt.Errorf("failed to get affiliate link: %w", err)
	}

	return &l, nil
}

// InsertAffiliateClick records a click-through before the visitor is
// redirected.
func InsertAffiliateClick(ctx context.Context, db *pgxpool.Pool, click *domain.AffiliateClick) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	query := `
		INSERT INTO affiliate_clicks (id, affiliate_link_id, ip_address, user_agent, referrer)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := db.Exec(ctx, query,
		click.ID, click.AffiliateLinkID, click.IPAddress, click.UserAgent, click.Referrer)
	if err != nil {
		return fmt.Errorf("failed to insert affiliate click: %w", err)
	}

	return nil
}

// ListAdPlacements returns the active placements for one slot.
func ListAdPlacements(ctx context.Context, db *pgxpool.Pool, slot string) ([]*domain.AdPlacement, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT id, name, slot, snippet, is_active, created_at
		FROM ad_placements
		WHERE slot = $1 AND is_active = true
		ORDER BY created_at ASC
	`

	rows, err := db.Query(ctx, query, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to list ad placements: %w", err)
	}
	defer rows.Close()

	var placements []*domain.AdPlacement

	for rows.Next() {
		var p domain.AdPlacement

		if err := rows.Scan(&p.ID, &p.Name, &p.Slot, &p.Snippet, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ad placement: %w", err)
		}

		placements = append(placements, &p)
	}

	return placements, rows.Err()
}

// AggregateRevenue builds the per-link click and payout report for a window.
// Payout is estimated from the link's current rate at report time.
func AggregateRevenue(ctx context.Context, db *pgxpool.Pool, from, to time.Time) (*domain.RevenueReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT l.id, l.name, COUNT(c.id), COUNT(c.id) * l.payout_per_click
		FROM affiliate_links l
		JOIN affiliate_clicks c ON c.affiliate_link_id = l.id
		WHERE c.created_at >= $1 AND c.created_at < $2
		GROUP BY l.id, l.name, l.payout_per_click
		ORDER BY COUNT(c.id) DESC
	`

	rows, err := db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer rows.Close()

	report := &domain.RevenueReport{From: from, To: to}

	for rows.Next() {
		var lr domain.LinkRevenue

		if err := rows.Scan(&lr.LinkID, &lr.LinkName, &lr.Clicks, &lr.Estimated); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}

		report.Links = append(report.Links, lr)
		report.TotalClicks += lr.Clicks
		report.Total += lr.Estimated
	}

	return report, rows.Err()
}
