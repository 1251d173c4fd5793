package postgrid

import "embed"

// EmbeddedAssets contains the client script served at /static/postgrid.js.
// It only forwards clicks and the URL fragment to /grid/ and swaps markup in.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
