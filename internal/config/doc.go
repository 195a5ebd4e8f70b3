// Package config loads rootfind settings with viper.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file, ROOTFIND_*
// environment variables, then explicitly set command-line flags.
//
//	log_level: debug
//	log_format: json
//	workers: 4
//	method: nelder-mead
//	tolerance: 0.000001
//	max_iterations: 500
package config
