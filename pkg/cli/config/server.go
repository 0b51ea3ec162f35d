package config

import "github.com/urfave/cli/v3"

// Server holds local control API configuration
type Server struct {
	Addr string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address of the local control API",
			Value:       "localhost:8731",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("CS2KZ_ADDR"),
		},
	}
}
