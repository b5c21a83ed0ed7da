package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SIGNUP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{Addr: addr}
}
