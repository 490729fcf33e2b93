package config

// CosmicConfig controls how we reach the Cosmic bucket.
type CosmicConfig struct {
	BucketSlug string `validate:"required"`
	ReadKey    string `validate:"required"`
	// WriteKey is carried for parity with the bucket settings. Nothing here writes.
	WriteKey string
	BaseURL  string   `validate:"required,url"`
	Timeout  Duration `validate:"gt=0"`
	// RPS caps outbound requests per second; zero disables the limiter.
	RPS float64 `validate:"gte=0"`
}

func loadCosmic() CosmicConfig {
	return CosmicConfig{
		BucketSlug: envOrDefault(envCosmicBucket, ""),
		ReadKey:    envOrDefault(envCosmicRead, ""),
		WriteKey:   envOrDefault(envCosmicWrite, ""),
		BaseURL:    envOrDefault(envCosmicBaseURL, defaultCosmicBaseURL),
		Timeout:    durationEnvOrDefault(envCosmicTimeout, defaultCosmicTimeout),
		RPS:        floatEnvOrDefault(envCosmicRPS, 0),
	}
}
