package config

// AppName is the full name of the application, used for display.
const AppName = "lucky7xz/datacard"

// Version is the current version of the application.
// This variable can be overwritten at build time using -ldflags.
// Example: go build -ldflags "-X 'github.com/lucky7xz/datacard/internal/config.Version=v1.0.0'"
var Version = "v0.1.0"
