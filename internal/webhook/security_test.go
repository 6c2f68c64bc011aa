package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Enabled: true, Secret: "topsecret", RateLimitPerMin: 60})
	payload := []byte(`{"event":"message"}`)

	if err := v.ValidateSignature(payload, sign("topsecret", payload)); err != nil {
		t.Errorf("valid signature rejected: %v", err)
	}
	if err := v.ValidateSignature(payload, sign("wrongsecret", payload)); err == nil {
		t.Error("wrong-secret signature accepted")
	}
	if err := v.ValidateSignature(payload, "not-hex!"); err == nil {
		t.Error("malformed signature accepted")
	}
	if err := v.ValidateSignature([]byte("tampered"), sign("topsecret", payload)); err == nil {
		t.Error("tampered payload accepted")
	}
}

func TestValidateSignature_Disabled(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Enabled: false})
	if err := v.ValidateSignature([]byte("anything"), "garbage"); err != nil {
		t.Errorf("disabled validator rejected request: %v", err)
	}
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{
		Enabled:         true,
		AllowedIPs:      []string{"10.0.0.5", "192.168.1.0/24"},
		RateLimitPerMin: 60,
	})

	tests := []struct {
		remoteAddr string
		wantOK     bool
	}{
		{"10.0.0.5:1234", true},
		{"192.168.1.77:1234", true},
		{"203.0.113.9:1234", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("POST", "/webhook/waha", nil)
		r.RemoteAddr = tt.remoteAddr
		err := v.ValidateIPAddress(r)
		if (err == nil) != tt.wantOK {
			t.Errorf("%s: err = %v, wantOK = %v", tt.remoteAddr, err, tt.wantOK)
		}
	}
}

func TestValidateIPAddress_ForwardedFor(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{
		Enabled:         true,
		AllowedIPs:      []string{"10.0.0.5"},
		RateLimitPerMin: 60,
	})

	r := httptest.NewRequest("POST", "/webhook/waha", nil)
	r.RemoteAddr = "127.0.0.1:9999"
	r.Header.Set("X-Forwarded-For", "10.0.0.5, 172.16.0.1")
	if err := v.ValidateIPAddress(r); err != nil {
		t.Errorf("forwarded IP rejected: %v", err)
	}
}

func TestCheckRateLimit(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{Enabled: true, Secret: "s", RateLimitPerMin: 10})

	// Burst of 1 allows the first request and throttles an immediate second.
	if err := v.CheckRateLimit("1.2.3.4"); err != nil {
		t.Fatalf("first request throttled: %v", err)
	}
	if err := v.CheckRateLimit("1.2.3.4"); err == nil {
		t.Error("burst exceeded but allowed")
	}
	// A different source has its own bucket.
	if err := v.CheckRateLimit("5.6.7.8"); err != nil {
		t.Errorf("independent source throttled: %v", err)
	}
}
