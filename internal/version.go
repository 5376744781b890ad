package constants

// Version is overwritten at build time via -ldflags.
var Version = "0.1.0-dev"
