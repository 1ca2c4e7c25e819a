// Package config defines the application configuration schema and loads it
// from environment variables and an optional YAML file via viper.
package config
