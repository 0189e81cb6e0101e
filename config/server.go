package config

import "os"

type ServerConfig struct {
	Port string
	// MockUpstreams registers local stand-in generation/synthesis endpoints
	// and points the adapters at them, so the pipeline runs with no external
	// credentials.
	MockUpstreams bool
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &ServerConfig{
		Port:          port,
		MockUpstreams: os.Getenv("MOCK_UPSTREAMS") == "true",
	}, nil
}
