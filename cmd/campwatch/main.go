// Package main is the entry point for the campwatch CLI.
package main

import "github.com/yisrose35/daily-camp-schedular-sub003/internal/app"

// version is stamped by the release build:
//
//	go build -ldflags "-X main.version=$(git describe --tags)"
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}
