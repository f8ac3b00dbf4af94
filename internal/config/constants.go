package config

import "time"

const (
	ServerReadTimeout     = 15 * time.Second
	ServerIdleTimeout     = 60 * time.Second
	ServerRequestTimeout  = 30 * time.Second
	ServerShutdownTimeout = 10 * time.Second

	DBPingTimeout = 5 * time.Second
)
