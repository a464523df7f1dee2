// Package config provides configuration management for the bucket manager.
//
// It utilizes Viper for loading configuration from an optional config.yaml,
// a .env file and environment variables. Defaults come from the `default`
// struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP API port and API key
//   - Storage: endpoint, credentials, region and bucket-name policy
//   - Log: logging level and format
//   - Database: optional transfer journal connection
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
