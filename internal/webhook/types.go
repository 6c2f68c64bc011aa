package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Enabled         bool     // When false, validation is skipped entirely
	Secret          string   // Shared secret for HMAC verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source
}
