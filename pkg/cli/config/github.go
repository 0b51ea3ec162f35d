package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub API configuration
type GitHub struct {
	Token   string
	BaseURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token used for release lookups (optional, raises the rate limit)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("CS2KZ_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Value:       "https://api.github.com/",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("CS2KZ_GITHUB_API_URL"),
		},
	}
}
