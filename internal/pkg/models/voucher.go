package models

import "time"

// VoucherStatus is the lifecycle state of a voucher. Only active vouchers
// can be redeemed, and redemption is one-way.
type VoucherStatus string

const (
	VoucherActive  VoucherStatus = "active"
	VoucherUsed    VoucherStatus = "used"
	VoucherExpired VoucherStatus = "expired"
)

// Voucher is a pre-generated access code.
type Voucher struct {
	ID        int64         `json:"id" db:"id"`
	TenantID  int64         `json:"tenant_id" db:"tenant_id"`
	Code      string        `json:"code" db:"code"`
	Policy    JSONMap       `json:"policy" db:"policy_json"`
	Status    VoucherStatus `json:"status" db:"status"`
	UsedByMAC *string       `json:"used_by_mac,omitempty" db:"used_by_mac"`
	UsedAt    *time.Time    `json:"used_at,omitempty" db:"used_at"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// Minutes is the session length granted by the voucher, 0 when unset.
func (v *Voucher) Minutes() int {
	return v.Policy.Int("minutes")
}
