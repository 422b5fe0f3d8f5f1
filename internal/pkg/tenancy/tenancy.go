// Package tenancy resolves the tenant and site a guest request is scoped to.
package tenancy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/guestportal/internal/pkg/models"
)

// Lookup reads tenants and sites
type Lookup interface {
	GetTenant(ctx context.Context, tenantID int64) (*models.Tenant, error)
	GetSite(ctx context.Context, tenantID, siteID int64) (*models.Site, error)
}

// ActiveTenant loads a tenant that may serve guests
func ActiveTenant(ctx context.Context, l Lookup, tenantID int64) (*models.Tenant, error) {
	tenant, err := l.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.Active() {
		return nil, fmt.Errorf("tenant %d is %q: %w", tenant.ID, tenant.Status, models.ErrTenantInactive)
	}
	return tenant, nil
}

// Resolve loads an active tenant and a site that belongs to it. A site owned
// by a different tenant is reported as not found.
func Resolve(ctx context.Context, l Lookup, tenantID, siteID int64) (*models.Tenant, *models.Site, error) {
	if tenantID <= 0 || siteID <= 0 {
		return nil, nil, fmt.Errorf("tenant_id and site_id are required: %w", models.ErrInvalidInput)
	}
	tenant, err := ActiveTenant(ctx, l, tenantID)
	if err != nil {
		return nil, nil, err
	}
	site, err := l.GetSite(ctx, tenant.ID, siteID)
	if err != nil {
		return nil, nil, err
	}
	return tenant, site, nil
}

// Repo is the sqlx implementation of Lookup, embedded by service repositories
type Repo struct {
	db *sqlx.DB
}

// NewRepo creates a Repo
func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// GetTenant implements Lookup
func (r *Repo) GetTenant(ctx context.Context, tenantID int64) (*models.Tenant, error) {
	var tenant models.Tenant
	query := `SELECT id, name, status, secret, created_at, updated_at FROM tenants WHERE id = $1`
	if err := r.db.GetContext(ctx, &tenant, query, tenantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tenant %d: %w", tenantID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return &tenant, nil
}

// GetSite implements Lookup
func (r *Repo) GetSite(ctx context.Context, tenantID, siteID int64) (*models.Site, error) {
	var site models.Site
	query := `
		SELECT id, tenant_id, brand_id, name, timezone, created_at
		FROM sites
		WHERE id = $1 AND tenant_id = $2`
	if err := r.db.GetContext(ctx, &site, query, siteID, tenantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("site %d: %w", siteID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return &site, nil
}
