// Package web embeds the form page served at the site root.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

func Templates() (*template.Template, error) {
	return template.ParseFS(assets, "templates/*.tmpl")
}

func Static() (http.FileSystem, error) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(static), nil
}
