package web

import (
	"embed"
)

// staticFiles holds the control page. The binary includes every file
// under static/.
//
//go:embed static/*
var staticFiles embed.FS
