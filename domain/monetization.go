package domain

import (
	"time"
)

// AffiliateLink is a tracked outbound link. Clicks are recorded before the
// visitor is redirected to the affiliate URL.
type AffiliateLink struct {
	CreatedAt      time.Time `db:"created_at"`
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	AffiliateURL   string    `db:"affiliate_url"`
	PayoutPerClick float64   `db:"payout_per_click"`
	IsActive       bool      `db:"is_active"`
}

// AffiliateClick is one recorded click-through, retained for revenue
// reporting.
type AffiliateClick struct {
	CreatedAt       time.Time `db:"created_at"`
	ID              string    `db:"id"`
	AffiliateLinkID string    `db:"affiliate_link_id"`
	IPAddress       string    `db:"ip_address"`
	UserAgent       string    `db:"user_agent"`
	Referrer        string    `db:"referrer"`
}

// AdPlacement is a named ad slot with its embed snippet.
type AdPlacement struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slot      string    `db:"slot" json:"slot"`
	Snippet   string    `db:"snippet" json:"snippet"`
	IsActive  bool      `db:"is_active" json:"is_active"`
}

// LinkRevenue aggregates clicks and estimated payout for one affiliate link.
type LinkRevenue struct {
	LinkID    string  `json:"link_id"`
	LinkName  string  `json:"link_name"`
	Clicks    int     `json:"clicks"`
	Estimated float64 `json:"estimated_revenue"`
}

// RevenueReport is the aggregated monetization view for a reporting window.
type RevenueReport struct {
	From        time.Time     `json:"from"`
	To          time.Time     `json:"to"`
	Links       []LinkRevenue `json:"links"`
	TotalClicks int           `json:"total_clicks"`
	Total       float64       `json:"total_estimated_revenue"`
}
