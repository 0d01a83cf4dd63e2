// Package config provides configuration management for the reach estimator.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the 'default' struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Graph: Graph API endpoint, version, access token and default ad account
//   - Targeting: batch concurrency and keyword pre-validation
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Graph.Endpoint)
package config
