//go:build !js && !wasip1

package main

import (
	"github.com/adace74/distribulator2-contrib/internal/app"
)

var (
	version   = ""
	commit    = ""
	buildDate = ""
)

// go build -ldflags "-X main.version=v1.1.0 -X main.commit=$(git rev-parse --short HEAD) -X 'main.buildDate=$(date +%Y-%m-%d)'" -o pingtcp ./cmd/pingtcp

func main() {
	app.SetVersionBuildCommitString(version, commit, buildDate)
	app.Execute()
}
