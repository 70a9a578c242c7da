package main

import (
	"log"
	"os"

	"github.com/ironsheep/image-border/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Diagnostics go to stderr; stdout carries user-facing messages
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv(cli.LogLevelEnv) == "debug" {
		log.Printf("image-border v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cli.Execute(cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
}
