//go:build !prod
// +build !prod

package client

// prodBuild selects the local development endpoint for regular builds.
const prodBuild = false
