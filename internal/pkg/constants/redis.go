package constants

// Redis key formats
const (
	KeySetting = "settings:%s" // Format: settings:{key}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
