package output

import (
	"fmt"
	"strings"
)

const bannerRule = "------------------------------------------------------"

// VersionBanner is printed before every probe (unless quiet) and on every
// invocation error.
func VersionBanner(version, commit, buildDate string) string {
	if version == "" {
		version = "dev"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "pingtcp %s", version)
	if commit != "" || buildDate != "" {
		fmt.Fprintf(&b, " (commit %s, built %s)", orUnknown(commit), orUnknown(buildDate))
	}
	b.WriteString("\nApplication Layer-based TCP Ping\n")
	b.WriteString(bannerRule)
	b.WriteString("\n")
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
