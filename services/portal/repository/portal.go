package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	"github.com/piresc/guestportal/services/portal"
)

// PortalRepo implements portal.PortalRepo on postgres
type PortalRepo struct {
	*tenancy.Repo
	cfg *models.Config
	db  *sqlx.DB
}

// NewPortalRepo creates a new portal repository
func NewPortalRepo(cfg *models.Config, db *sqlx.DB) portal.PortalRepo {
	return &PortalRepo{
		Repo: tenancy.NewRepo(db),
		cfg:  cfg,
		db:   db,
	}
}

const sessionColumns = `id, guest_user_id, site_id, mac, ip, start_at, end_at, bytes_up, bytes_down, policy_json`

// ssidRow is an SSID left joined with its controller
type ssidRow struct {
	models.SSID
	CtrlID        sql.NullInt64  `db:"c_id"`
	CtrlTenantID  sql.NullInt64  `db:"c_tenant_id"`
	CtrlType      sql.NullString `db:"c_type"`
	CtrlBaseURL   sql.NullString `db:"c_base_url"`
	CtrlAPIKey    sql.NullString `db:"c_api_key"`
	CtrlAPISecret sql.NullString `db:"c_api_secret"`
	CtrlMetadata  models.JSONMap `db:"c_metadata"`
}

// GetSSIDWithController returns the SSID named name at siteID and its controller
func (r *PortalRepo) GetSSIDWithController(ctx context.Context, siteID int64, name string) (*models.SSID, *models.Controller, error) {
	query := `
		SELECT s.id, s.site_id, s.controller_id, s.name, s.auth_mode, s.walled_garden,
			c.id AS c_id, c.tenant_id AS c_tenant_id, c.type AS c_type, c.base_url AS c_base_url,
			c.api_key AS c_api_key, c.api_secret AS c_api_secret, c.metadata AS c_metadata
		FROM ssids s
		LEFT JOIN controllers c ON c.id = s.controller_id
		WHERE s.site_id = $1 AND s.name = $2`

	var row ssidRow
	if err := r.db.GetContext(ctx, &row, query, siteID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("ssid %q: %w", name, models.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to get ssid: %w", err)
	}

	ssid := row.SSID
	if !row.CtrlID.Valid {
		return &ssid, nil, nil
	}
	return &ssid, &models.Controller{
		ID:        row.CtrlID.Int64,
		TenantID:  row.CtrlTenantID.Int64,
		Type:      row.CtrlType.String,
		BaseURL:   row.CtrlBaseURL.String,
		APIKey:    row.CtrlAPIKey.String,
		APISecret: row.CtrlAPISecret.String,
		Metadata:  row.CtrlMetadata,
	}, nil
}

// UpsertGuestUser inserts the guest or returns the existing (tenant, mac)
// row. A known email is never overwritten.
func (r *PortalRepo) UpsertGuestUser(ctx context.Context, user *models.GuestUser) (*models.GuestUser, error) {
	query := `
		INSERT INTO guest_users (id, tenant_id, mac, mac_hash, email, consent_json, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tenant_id, mac) DO UPDATE SET
			mac_hash = EXCLUDED.mac_hash,
			email = COALESCE(NULLIF(guest_users.email, ''), EXCLUDED.email),
			updated_at = EXCLUDED.updated_at
		RETURNING id, tenant_id, mac, mac_hash, email, phone, social_id, consent_json, created_at, updated_at`

	var out models.GuestUser
	err := r.db.GetContext(ctx, &out, query,
		user.ID,
		user.TenantID,
		user.MAC,
		user.MACHash,
		user.Email,
		user.Consent,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert guest user: %w", err)
	}
	return &out, nil
}

// CreateSession inserts an open session
func (r *PortalRepo) CreateSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, guest_user_id, site_id, mac, ip, start_at, policy_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.GuestUserID,
		session.SiteID,
		session.MAC,
		session.IP,
		session.StartAt,
		session.Policy,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession returns a session by id
func (r *PortalRepo) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	if err := r.db.GetContext(ctx, &session, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", sessionID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// CloseOpenSessions ends every open session of mac at siteID
func (r *PortalRepo) CloseOpenSessions(ctx context.Context, siteID int64, mac string, endAt time.Time) (int64, error) {
	query := `UPDATE sessions SET end_at = $1 WHERE site_id = $2 AND mac = $3 AND end_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, endAt, siteID, mac)
	if err != nil {
		return 0, fmt.Errorf("failed to close sessions: %w", err)
	}
	return res.RowsAffected()
}

// ListOpenSessionsForSSID returns open sessions of mac on sites where the
// controller identified by nasID serves ssid in radius mode, newest first.
// Sessions of other tenants never match.
func (r *PortalRepo) ListOpenSessionsForSSID(ctx context.Context, nasID, ssid, mac string) ([]*models.Session, error) {
	query := `
		SELECT s.id, s.guest_user_id, s.site_id, s.mac, s.ip, s.start_at, s.end_at,
			s.bytes_up, s.bytes_down, s.policy_json
		FROM sessions s
		JOIN ssids x ON x.site_id = s.site_id
		JOIN controllers c ON c.id = x.controller_id
		JOIN sites st ON st.id = s.site_id AND st.tenant_id = c.tenant_id
		WHERE c.nas_identifier = $1 AND x.name = $2 AND x.auth_mode = $3
			AND s.mac = $4 AND s.end_at IS NULL
		ORDER BY s.start_at DESC`

	var sessions []*models.Session
	if err := r.db.SelectContext(ctx, &sessions, query, nasID, ssid, models.AuthModeRadius, mac); err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	return sessions, nil
}

// CreateOTP stores an issued code
func (r *PortalRepo) CreateOTP(ctx context.Context, otp *models.EmailOTP) error {
	query := `
		INSERT INTO email_otps (id, tenant_id, email, code, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		otp.ID,
		otp.TenantID,
		otp.Email,
		otp.Code,
		otp.ExpiresAt,
		otp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create otp: %w", err)
	}
	return nil
}

// GetLatestOTP returns the newest code matching (tenant, email, code)
func (r *PortalRepo) GetLatestOTP(ctx context.Context, tenantID int64, email, code string) (*models.EmailOTP, error) {
	var otp models.EmailOTP
	query := `
		SELECT id, tenant_id, email, code, expires_at, verified_at, created_at
		FROM email_otps
		WHERE tenant_id = $1 AND email = $2 AND code = $3
		ORDER BY created_at DESC
		LIMIT 1`
	if err := r.db.GetContext(ctx, &otp, query, tenantID, email, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("otp: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}
	return &otp, nil
}

// MarkOTPVerified is a compare-and-set on verified_at
func (r *PortalRepo) MarkOTPVerified(ctx context.Context, otpID string, now time.Time) (bool, error) {
	query := `
		UPDATE email_otps SET verified_at = $1
		WHERE id = $2 AND verified_at IS NULL AND expires_at > $1`
	res, err := r.db.ExecContext(ctx, query, now, otpID)
	if err != nil {
		return false, fmt.Errorf("failed to verify otp: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// RedeemVoucher locks the voucher row and marks it used
func (r *PortalRepo) RedeemVoucher(ctx context.Context, tenantID int64, code, mac string, usedAt time.Time) (*models.Voucher, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var voucher models.Voucher
	query := `
		SELECT id, tenant_id, code, policy_json, status, used_by_mac, used_at, created_at, updated_at
		FROM vouchers
		WHERE tenant_id = $1 AND code = $2
		FOR UPDATE`
	if err := tx.GetContext(ctx, &voucher, query, tenantID, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrInvalidVoucher
		}
		return nil, fmt.Errorf("failed to lock voucher: %w", err)
	}
	if voucher.Status != models.VoucherActive {
		return nil, models.ErrInvalidVoucher
	}

	update := `
		UPDATE vouchers SET status = $1, used_by_mac = $2, used_at = $3, updated_at = $3
		WHERE id = $4`
	if _, err := tx.ExecContext(ctx, update, models.VoucherUsed, mac, usedAt, voucher.ID); err != nil {
		return nil, fmt.Errorf("failed to redeem voucher: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	voucher.Status = models.VoucherUsed
	voucher.UsedByMAC = &mac
	voucher.UsedAt = &usedAt
	voucher.UpdatedAt = usedAt
	return &voucher, nil
}

// CreateVouchers inserts the batch in one transaction and fills in ids
func (r *PortalRepo) CreateVouchers(ctx context.Context, vouchers []*models.Voucher) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO vouchers (tenant_id, code, policy_json, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	for _, v := range vouchers {
		err := tx.QueryRowxContext(ctx, query,
			v.TenantID,
			v.Code,
			v.Policy,
			v.Status,
			v.CreatedAt,
			v.UpdatedAt,
		).Scan(&v.ID)
		if err != nil {
			return fmt.Errorf("failed to insert voucher: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPublishedPage returns the most recently updated published page
func (r *PortalRepo) GetPublishedPage(ctx context.Context, tenantID, siteID int64) (*models.Page, error) {
	var page models.Page
	query := `
		SELECT id, tenant_id, site_id, status, html, updated_at
		FROM pages
		WHERE tenant_id = $1 AND site_id = $2 AND status = $3
		ORDER BY updated_at DESC
		LIMIT 1`
	if err := r.db.GetContext(ctx, &page, query, tenantID, siteID, models.PagePublished); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("page: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &page, nil
}
