package config

import (
	"fmt"
	"slices"
	"strings"
)

// CurrentConfigVersion is the configVersion new coursegraph configs declare.
const CurrentConfigVersion = "1"

// supportedConfigVersions lists every configVersion Parse accepts, oldest
// first. A version leaves this list only with a breaking release.
var supportedConfigVersions = []string{CurrentConfigVersion}

// IsSupportedConfigVersion reports whether Parse accepts v.
func IsSupportedConfigVersion(v string) bool {
	return slices.Contains(supportedConfigVersions, v)
}

// SupportedConfigVersionsCSV lists the accepted versions for error messages.
func SupportedConfigVersionsCSV() string {
	return strings.Join(supportedConfigVersions, ", ")
}

func checkConfigVersion(v string) error {
	if IsSupportedConfigVersion(v) {
		return nil
	}
	return fmt.Errorf("unsupported configVersion: %q (supported: %s)", v, SupportedConfigVersionsCSV())
}
