package models

import "time"

// EmailOTP is a six digit code issued to an email address.
type EmailOTP struct {
	ID         string     `json:"id" db:"id"`
	TenantID   int64      `json:"tenant_id" db:"tenant_id"`
	Email      string     `json:"email" db:"email"`
	Code       string     `json:"-" db:"code"`
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`
	VerifiedAt *time.Time `json:"verified_at,omitempty" db:"verified_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// Usable reports whether the code can still be verified at now.
func (o *EmailOTP) Usable(now time.Time) bool {
	return o.VerifiedAt == nil && now.Before(o.ExpiresAt)
}

// OTPNotification is published to the event bus for delivery.
type OTPNotification struct {
	OTPID     string    `json:"otp_id"`
	TenantID  int64     `json:"tenant_id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OTPIssueResult is returned from an OTP issue request.
type OTPIssueResult struct {
	OTPID     string    `json:"otp_id"`
	ExpiresAt time.Time `json:"expires_at"`
	DevCode   string    `json:"dev_code,omitempty"`
}
