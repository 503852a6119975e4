// Package config provides configuration management for the review hub.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Environment overrides, including a .env file
//   - Building the session and the root logger
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Talks to http://localhost:3001
//	// Serves the browser shell on :8080
//	// Acts as user 1
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
// ApplyEnv reads REVIEWHUB_API_URL, REVIEWHUB_LISTEN, REVIEWHUB_USER_ID and
// REVIEWHUB_LOG_LEVEL, after loading any .env file in the working directory:
//
//	if err := settings.ApplyEnv(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Saving Settings
//
//	settings.APIBaseURL = "http://api.example.com"
//	err := settings.Save("/path/to/config.json")
package config
