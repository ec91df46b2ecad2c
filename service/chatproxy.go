package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/raushankrgupta/intern-guide-backend/models"
	"github.com/raushankrgupta/intern-guide-backend/store"
)

const (
	// FallbackNoReply is returned when the upstream answered but produced
	// no completion content.
	FallbackNoReply = "No reply from AI"
	// FallbackUpstreamError is returned when the upstream could not be
	// reached or its response could not be parsed.
	FallbackUpstreamError = "Error connecting to AI API."
)

// ReplyKind tags the outcome of an Ask call. Clients only ever see the
// reply string, but the kind keeps "AI had nothing to say" and "the call
// failed" distinguishable internally and in logs.
type ReplyKind int

const (
	ReplyOK ReplyKind = iota
	ReplyEmpty
	ReplyUpstreamError
)

// AskResult is the tagged outcome of a chat-completion relay.
type AskResult struct {
	Kind  ReplyKind
	Reply string
	Err   error // set only for ReplyUpstreamError
}

// ChatProxy relays chat-completion payloads to the hosted LLM API and
// fetches profile context for prompt grounding.
type ChatProxy struct {
	store  store.UserStore
	apiURL string
	apiKey string
	client *http.Client
}

func NewChatProxy(s store.UserStore, apiURL, apiKey string) *ChatProxy {
	return &ChatProxy{
		store:  s,
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// UserContext returns the profile used to ground the widget's system
// prompt. The password hash is never serialized.
func (p *ChatProxy) UserContext(ctx context.Context, id string) (*models.User, error) {
	return p.store.FindByID(ctx, id)
}

// Ask forwards payload verbatim to the chat-completion endpoint with the
// server-held bearer credential and extracts the first choice's message
// content. All failures collapse into a human-readable reply string; the
// AskResult kind records what actually happened.
func (p *ChatProxy) Ask(ctx context.Context, payload []byte) AskResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(payload))
	if err != nil {
		return AskResult{Kind: ReplyUpstreamError, Reply: FallbackUpstreamError, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("Groq API error: %v", err)
		return AskResult{Kind: ReplyUpstreamError, Reply: FallbackUpstreamError, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Groq API read error: %v", err)
		return AskResult{Kind: ReplyUpstreamError, Reply: FallbackUpstreamError, Err: err}
	}

	var completion models.ChatCompletion
	if err := json.Unmarshal(body, &completion); err != nil {
		log.Printf("Groq API parse error: %v", err)
		return AskResult{Kind: ReplyUpstreamError, Reply: FallbackUpstreamError, Err: err}
	}

	if completion.Error != nil {
		log.Printf("Groq API declined: %s (%s)", completion.Error.Message, completion.Error.Type)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return AskResult{Kind: ReplyEmpty, Reply: FallbackNoReply}
	}

	return AskResult{Kind: ReplyOK, Reply: completion.Choices[0].Message.Content}
}
