// Package config defines the deployment configuration model for hcpconf.
//
// The [Config] struct is the canonical representation of a hub-cluster
// deployment document: operator toggles under DEPLOYMENT, the environment
// description and the named hosted-cluster definitions under ENV_DATA.
// It is produced by [Load] from a YAML document, checked with
// [Config.Validate], and completed with [Config.WithDefaults] before any
// downstream tooling consumes it.
package config
