package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/intern-guide-backend/models"
	"github.com/raushankrgupta/intern-guide-backend/store"
)

const askPayload = `{"model":"llama-3.1-8b-instant","messages":[{"role":"system","content":"You are an internship guide."},{"role":"user","content":"hi"}]}`

func TestAskForwardsPayloadVerbatim(t *testing.T) {
	var gotBody []byte
	var gotAuth, gotContentType string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(models.ChatCompletion{
			Choices: []models.ChatChoice{{Message: models.ChatMessage{Role: "assistant", Content: "Apply early."}}},
		})
	}))
	defer upstream.Close()

	p := NewChatProxy(store.NewMemory(), upstream.URL, "test-key")
	result := p.Ask(context.Background(), []byte(askPayload))

	require.Equal(t, ReplyOK, result.Kind)
	require.Equal(t, "Apply early.", result.Reply)
	require.JSONEq(t, askPayload, string(gotBody))
	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "application/json", gotContentType)
}

func TestAskEmptyChoices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ChatCompletion{})
	}))
	defer upstream.Close()

	p := NewChatProxy(store.NewMemory(), upstream.URL, "k")
	result := p.Ask(context.Background(), []byte(askPayload))

	require.Equal(t, ReplyEmpty, result.Kind)
	require.Equal(t, FallbackNoReply, result.Reply)
}

func TestAskEmptyContent(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ChatCompletion{
			Choices: []models.ChatChoice{{Message: models.ChatMessage{Role: "assistant", Content: ""}}},
		})
	}))
	defer upstream.Close()

	p := NewChatProxy(store.NewMemory(), upstream.URL, "k")
	result := p.Ask(context.Background(), []byte(askPayload))

	require.Equal(t, ReplyEmpty, result.Kind)
	require.Equal(t, FallbackNoReply, result.Reply)
}

func TestAskUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // nothing listening anymore

	p := NewChatProxy(store.NewMemory(), upstream.URL, "k")
	result := p.Ask(context.Background(), []byte(askPayload))

	require.Equal(t, ReplyUpstreamError, result.Kind)
	require.Equal(t, FallbackUpstreamError, result.Reply)
	require.Error(t, result.Err)
}

func TestAskMalformedUpstreamResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	}))
	defer upstream.Close()

	p := NewChatProxy(store.NewMemory(), upstream.URL, "k")
	result := p.Ask(context.Background(), []byte(askPayload))

	require.Equal(t, ReplyUpstreamError, result.Kind)
	require.Equal(t, FallbackUpstreamError, result.Reply)
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	auth := NewAuthService(mem, nil)

	id, err := auth.Signup(ctx, SignupInput{Name: "Bo", Email: "bo@x.com", Password: "pw1", Skills: []string{"go"}})
	require.NoError(t, err)

	p := NewChatProxy(mem, "http://unused", "k")

	user, err := p.UserContext(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Bo", user.Name)
	require.Equal(t, []string{"go"}, user.Skills)

	_, err = p.UserContext(ctx, "missing")
	require.ErrorIs(t, err, models.ErrNotFound)
}
