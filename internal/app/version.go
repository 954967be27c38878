package app

// Version is the release version of the thm binary. It is overridden at
// build time via:
//
//	go build -ldflags "-X github.com/thm-tools/cli/internal/app.Version=v1.0.0"
var Version = "dev"
