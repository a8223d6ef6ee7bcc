package web

import "embed"

// TemplatesFS holds the page templates rendered by the calculator server.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds stylesheets served under /static/.
//
//go:embed static/*
var StaticFS embed.FS
