// Package web embeds the browser-side chatbot widget so the backend can
// serve it without a separate static host.
package web

import "embed"

//go:embed chatbot.js index.html
var Assets embed.FS
