package config

type Config struct {
	Port               int
	Environment        string
	CORSAllowedOrigins []string
	RateLimit          string

	// proxies whose X-Forwarded-For is believed, nil trusts none
	TrustedProxies []string
}
