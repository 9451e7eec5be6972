package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the rate limit applied to a single endpoint. A Limit of zero or
// less means unlimited.
type Rule struct {
	Path   string // exact path, or a "/" suffix for prefix matching
	Method string
	Limit  int // maximum requests per window
	Window time.Duration
	Burst  int // burst capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Rules           []Rule
}

// DefaultConfig returns the built-in configuration: 5 generations per minute
// per client, a lenient default for everything else, and unlimited liveness
// endpoints.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    60,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		Rules:           defaultRules(),
	}
}

// defaultRules returns the endpoint-specific limits. Generation is the only
// expensive operation; the static read endpoints ride on the default.
func defaultRules() []Rule {
	return []Rule{
		{Path: "/api/v1/jobs", Method: "POST", Limit: 5, Window: time.Minute, Burst: 5},
	}
}

// unlimitedPaths never consume tokens.
var unlimitedPaths = map[string]bool{
	"/":       true,
	"/health": true,
}

// match resolves the rule for a request path and method. Exact matches win
// over prefix matches; unmatched requests get the default limit.
func (c *Config) match(path, method string) Rule {
	if method == "GET" && unlimitedPaths[path] {
		return Rule{}
	}

	for _, rule := range c.Rules {
		if rule.Path == path && rule.Method == method {
			return rule
		}
	}
	for _, rule := range c.Rules {
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}

	return Rule{
		Path:   path,
		Method: method,
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
		Burst:  c.DefaultLimit,
	}
}

// LoadConfig loads rate limiting configuration from environment variables,
// falling back to the built-in defaults.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}

	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Whitelist = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))

	if limit := getEnvInt("RATE_LIMIT_JOBS_LIMIT", 0); limit > 0 {
		cfg.Rules = []Rule{
			{Path: "/api/v1/jobs", Method: "POST", Limit: limit, Window: time.Minute, Burst: limit},
		}
	}

	return cfg
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
