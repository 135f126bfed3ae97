package config

// MirrorConfig controls the optional object-store copy of published artifacts.
// URL is s3://bucket/prefix or gs://bucket/prefix; empty disables mirroring.
type MirrorConfig struct {
	URL             string
	Endpoint        string // S3-compatible endpoint override (e.g. Cloudflare R2)
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Enabled reports whether a mirror target is configured.
func (m MirrorConfig) Enabled() bool {
	return m.URL != ""
}

func loadMirror() MirrorConfig {
	return MirrorConfig{
		URL:             envOrDefault(envMirrorURL, ""),
		Endpoint:        envOrDefault(envMirrorEndpoint, ""),
		Region:          envOrDefault(envMirrorRegion, defaultMirrorRegion),
		AccessKeyID:     envOrDefault(envMirrorKeyID, ""),
		SecretAccessKey: envOrDefault(envMirrorSecret, ""),
	}
}
