package config

// ImagesConfig controls how artwork URLs are rewritten for display.
type ImagesConfig struct {
	ProxyURL       string
	PlaceholderURL string
}

func loadImages() ImagesConfig {
	return ImagesConfig{
		ProxyURL:       envOrDefault(envImageProxy, DefaultImageProxy),
		PlaceholderURL: envOrDefault(envPlaceholder, DefaultPlaceholderURL),
	}
}
