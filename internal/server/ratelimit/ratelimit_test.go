package ratelimit

import (
	"fmt"
	"testing"
	"time"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  60,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		Rules:         defaultRules(),
	}
}

func TestAllow_JobsLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("1.2.3.4", "/api/v1/jobs", "POST")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if info.Limit != 5 {
			t.Errorf("request %d: Limit = %d, want 5", i+1, info.Limit)
		}
	}

	allowed, info := l.Allow("1.2.3.4", "/api/v1/jobs", "POST")
	if allowed {
		t.Fatal("sixth request should be denied")
	}
	if info.RetryAfter <= 0 {
		t.Errorf("denied request RetryAfter = %v, want > 0", info.RetryAfter)
	}
	if info.ResetTime.Before(time.Now()) {
		t.Errorf("denied request ResetTime %v is in the past", info.ResetTime)
	}
}

func TestAllow_ClientsIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		l.Allow("1.2.3.4", "/api/v1/jobs", "POST")
	}
	if allowed, _ := l.Allow("1.2.3.4", "/api/v1/jobs", "POST"); allowed {
		t.Fatal("exhausted client should be denied")
	}

	if allowed, _ := l.Allow("5.6.7.8", "/api/v1/jobs", "POST"); !allowed {
		t.Error("a different client should not be affected")
	}
}

func TestAllow_UnlimitedPaths(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for _, path := range []string{"/", "/health"} {
		for i := 0; i < 100; i++ {
			if allowed, _ := l.Allow("1.2.3.4", path, "GET"); !allowed {
				t.Fatalf("GET %s should never be limited (request %d)", path, i+1)
			}
		}
	}
}

func TestAllow_DefaultLimitForUnmatchedPath(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	_, info := l.Allow("1.2.3.4", "/api/v1/jobs/experience-levels", "GET")
	if info.Limit != 60 {
		t.Errorf("unmatched path Limit = %d, want default 60", info.Limit)
	}
}

func TestAllow_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["1.2.3.4"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		if allowed, _ := l.Allow("1.2.3.4", "/api/v1/jobs", "POST"); !allowed {
			t.Fatalf("whitelisted client denied on request %d", i+1)
		}
	}
}

func TestAllow_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	if allowed, _ := l.Allow("6.6.6.6", "/health", "GET"); allowed {
		t.Error("blacklisted client should always be denied")
	}
}

func TestAllow_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		if allowed, _ := l.Allow("1.2.3.4", "/api/v1/jobs", "POST"); !allowed {
			t.Fatalf("disabled limiter denied request %d", i+1)
		}
	}
}

func TestAllow_RemainingDecreases(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	_, first := l.Allow("1.2.3.4", "/api/v1/jobs", "POST")
	_, second := l.Allow("1.2.3.4", "/api/v1/jobs", "POST")
	if second.Remaining >= first.Remaining {
		t.Errorf("Remaining did not decrease: first %d, second %d", first.Remaining, second.Remaining)
	}
}

func TestMatch(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = append(cfg.Rules, Rule{Path: "/api/v1/admin/", Method: "POST", Limit: 2, Window: time.Minute})

	tests := []struct {
		name   string
		path   string
		method string
		limit  int
	}{
		{name: "exact jobs rule", path: "/api/v1/jobs", method: "POST", limit: 5},
		{name: "prefix rule", path: "/api/v1/admin/reload", method: "POST", limit: 2},
		{name: "unlimited root", path: "/", method: "GET", limit: 0},
		{name: "unlimited health", path: "/health", method: "GET", limit: 0},
		{name: "default for GET jobs", path: "/api/v1/jobs", method: "GET", limit: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := cfg.match(tt.path, tt.method)
			if rule.Limit != tt.limit {
				t.Errorf("match(%s %s).Limit = %d, want %d", tt.method, tt.path, rule.Limit, tt.limit)
			}
		})
	}
}

func TestBucketRefill(t *testing.T) {
	// 10 tokens per second so the refill is observable quickly.
	tb := newTokenBucket(1, 10)

	if !tb.allow() {
		t.Fatal("first request should be allowed")
	}
	if tb.allow() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(150 * time.Millisecond)
	if !tb.allow() {
		t.Error("bucket should have refilled")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "100")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_JOBS_LIMIT", "10")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")
	t.Setenv("RATE_LIMIT_BLACKLIST", "")

	cfg := LoadConfig()

	if cfg.DefaultLimit != 100 {
		t.Errorf("DefaultLimit = %d, want 100", cfg.DefaultLimit)
	}
	if cfg.DefaultWindow != 30*time.Second {
		t.Errorf("DefaultWindow = %v, want 30s", cfg.DefaultWindow)
	}
	if len(cfg.Rules) != 1 || cfg.Rules[0].Limit != 10 {
		t.Errorf("jobs rule = %+v, want limit 10", cfg.Rules)
	}
	if !cfg.Whitelist["10.0.0.1"] || !cfg.Whitelist["10.0.0.2"] {
		t.Errorf("Whitelist = %v, want both entries", cfg.Whitelist)
	}
	if len(cfg.Blacklist) != 0 {
		t.Errorf("Blacklist = %v, want empty", cfg.Blacklist)
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Enabled = true, want false")
	}
}

func TestConcurrentAccess(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			clientID := fmt.Sprintf("10.0.0.%d", n)
			for j := 0; j < 20; j++ {
				l.Allow(clientID, "/api/v1/jobs", "POST")
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
