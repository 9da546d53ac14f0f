// Package config provides centralized configuration management for ccxstat.
// It handles loading configuration from multiple sources, validation, and
// provides a type-safe API for accessing configuration values.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (ccxstat.yaml or CCXSTAT_CONFIG)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CCXSTAT_* for namespacing:
//
//	CCXSTAT_LOGGING_LEVEL=debug
//	CCXSTAT_LOGGING_OUTPUT=both
//	CCXSTAT_EXTRACT_QUANTITIES=mises,peeq
//	CCXSTAT_EXTRACT_FORMAT=json
package config
