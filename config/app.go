package config

import "os"

type AppConfig struct {
	Port string
	// FrontendURL is the public base used to build the links embedded in
	// verification and recovery emails.
	FrontendURL string
}

func LoadAppConfig() AppConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:5173"
	}

	return AppConfig{
		Port:        port,
		FrontendURL: frontend,
	}
}
