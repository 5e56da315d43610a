// Package data embeds test data shipped with the module.
package data

import _ "embed"

// SmokeCases is the default case file for cmd/smoketest.
//
//go:embed smoke_cases.yaml
var SmokeCases []byte
