package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds HTTP server configuration
type Server struct {
	Addr   string
	Cutoff string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("CASETREND_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "cutoff",
			Usage:       "Aggregation cutoff instant in RFC3339 (default: now); records at or after it are excluded",
			Value:       "",
			Sources:     cli.EnvVars("CASETREND_CUTOFF"),
			Destination: &s.Cutoff,
		},
	}
}

// CutoffTime resolves the cutoff instant, defaulting to the current time
func (s *Server) CutoffTime() (time.Time, error) {
	if s.Cutoff == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, s.Cutoff)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid cutoff instant",
			goerr.V("cutoff", s.Cutoff))
	}
	return t, nil
}
