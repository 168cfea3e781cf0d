package repolink

import "embed"

// EmbeddedAssets contains the default page shell (index.html) and its
// stylesheet (styles.css).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
