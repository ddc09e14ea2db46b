package github

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"prai/internal/config"
	"prai/internal/dedup"
	"prai/internal/observability"
)

type WebhookHandler struct {
	cfg    *config.Config
	logger *observability.Logger
	queue  JobQueue
	seen   dedup.Store
}

func NewWebhookHandler(cfg *config.Config, logger *observability.Logger, queue JobQueue, seen dedup.Store) *WebhookHandler {
	return &WebhookHandler{
		cfg:    cfg,
		logger: logger,
		queue:  queue,
		seen:   seen,
	}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if !h.verifySignature(r.Header.Get("X-Hub-Signature-256"), payload) {
		h.logger.Error("invalid github signature")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	event := r.Header.Get("X-GitHub-Event")

	switch event {
	case "pull_request":
		h.handlePullRequest(r, payload)
	default:
		h.logger.Info("event ignored", "event", event)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *WebhookHandler) handlePullRequest(r *http.Request, payload []byte) {

	var event PullRequestEvent

	if err := json.Unmarshal(payload, &event); err != nil {
		h.logger.Error("failed to parse pr event", "error", err)
		return
	}

	if event.Action != "opened" && event.Action != "synchronize" {
		h.logger.Info("pr action ignored", "action", event.Action)
		return
	}

	if event.PullRequest.Draft {
		h.logger.Info("draft pr skipped",
			"repo", event.Repository.FullName,
			"pr", event.PullRequest.Number,
		)
		return
	}

	// GitHub redelivers webhooks; one review per head SHA is enough.
	key := fmt.Sprintf("%s#%d@%s",
		event.Repository.FullName,
		event.PullRequest.Number,
		event.PullRequest.Head.SHA,
	)
	if h.seen.Seen(r.Context(), key) {
		h.logger.Info("duplicate delivery suppressed", "key", key)
		return
	}
	_ = h.seen.Mark(r.Context(), key)

	err := h.queue.Enqueue(
		r.Context(),
		event.Repository.FullName,
		event.PullRequest.Number,
		event.Sender.Login,
		event.PullRequest.Head.SHA,
	)
	if err != nil {
		h.logger.Error("enqueue failed",
			"repo", event.Repository.FullName,
			"pr", event.PullRequest.Number,
			"error", err,
		)
		return
	}

	h.logger.Info("review queued",
		"repo", event.Repository.FullName,
		"pr", event.PullRequest.Number,
		"action", event.Action,
	)
}

func (h *WebhookHandler) verifySignature(signature string, body []byte) bool {
	if h.cfg.GithubSecret == "" {
		h.logger.Error("github secret not configured")
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.cfg.GithubSecret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
