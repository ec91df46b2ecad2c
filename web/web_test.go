package web

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssetsEmbedded(t *testing.T) {
	js, err := Assets.ReadFile("chatbot.js")
	require.NoError(t, err)
	require.Contains(t, string(js), "chatbot/ask")

	html, err := Assets.ReadFile("index.html")
	require.NoError(t, err)
	require.Contains(t, string(html), "chatbot.js")
}
