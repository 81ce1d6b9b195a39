package ratelimit

import "strings"

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Paths ending in "/" match by prefix, so "/resumes/" covers
// "/resumes/{id}" and everything below it. Returns nil when no config
// matches, in which case the caller falls back to the default limit.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Path: path, Method: method, Limit: 0}
	}

	var best *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		matches := cfg.Path == path ||
			(strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path))
		if !matches {
			continue
		}
		// Longest prefix wins so specific routes beat broad ones.
		if best == nil || len(cfg.Path) > len(best.Path) {
			best = cfg
		}
	}
	return best
}
