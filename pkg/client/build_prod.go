//go:build prod
// +build prod

package client

// prodBuild selects the production backend endpoint when no explicit
// override is configured.
const prodBuild = true
