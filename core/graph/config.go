package graph

// Config holds configuration for the Graph API client.
type Config struct {
	// Endpoint is the base URL of the Graph API.
	Endpoint string `mapstructure:"endpoint" default:"https://graph.facebook.com"`
	// Version is the API version path segment (e.g., v2.0). Empty means unversioned.
	Version string `mapstructure:"version" default:"v2.0"`
	// AccessToken is sent with every request.
	AccessToken string `mapstructure:"access_token" default:""`
	// AdAccount is the default ad account id (e.g., act_1234) used by the CLI and HTTP API.
	AdAccount string `mapstructure:"ad_account" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
