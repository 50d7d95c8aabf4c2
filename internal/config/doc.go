// Package config provides configuration structures and utilities for leadscan.
// It defines the lead service endpoint, page fetching settings, email
// filtering policy, report output preferences, and the optional .leadscan
// YAML configuration file.
package config
