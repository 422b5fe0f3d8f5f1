package constants

// Counter key prefixes. Full keys are built with counter.Key so that MACs,
// emails and IPs never appear in Redis in clear text.
const (
	KeyAdsCap    = "ads:cap"    // parts: tenant, site, mac, slot
	KeyAdsPace   = "ads:pace"   // parts: tenant, site, slot
	KeyOTPIssue  = "otp:issue"  // parts: tenant, email
	KeyRateLimit = "rate:limit" // parts: resource, ip
)
