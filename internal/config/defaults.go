package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),

		Metadata: MetadataConfig{
			RequestsPerMinute: 60,
			PlaceholderCover:  "/assets/covers/placeholder.png",
		},
	}
}
