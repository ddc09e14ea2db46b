package github

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"prai/internal/config"
	"prai/internal/diff"
	"prai/internal/observability"
	"prai/internal/review"

	"github.com/golang-jwt/jwt/v4"
)

type client struct {
	cfg    *config.Config
	logger *observability.Logger
	http   *http.Client
	cache  *tokenCache
}

func NewClient(cfg *config.Config, logger *observability.Logger) Client {
	return &client{
		cfg:    cfg,
		logger: logger,
		http:   &http.Client{Timeout: 15 * time.Second},
		cache:  &tokenCache{},
	}
}

type prResponse struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Draft  bool   `json:"draft"`
	User   struct {
		Login string `json:"login"`
	} `json:"user"`
	Head struct {
		SHA string `json:"sha"`
	} `json:"head"`
	Additions    int `json:"additions"`
	Deletions    int `json:"deletions"`
	ChangedFiles int `json:"changed_files"`
}

func (c *client) FetchPullRequest(ctx context.Context, repo string, pr int) (review.PRContext, []diff.FilePayload, diff.Metadata, error) {

	var prctx review.PRContext
	var meta diff.Metadata

	token, err := c.getToken(ctx)
	if err != nil {
		return prctx, nil, meta, err
	}

	var prData prResponse
	url := fmt.Sprintf("https://api.github.com/repos/%s/pulls/%d", repo, pr)
	if err := c.getJSON(ctx, token, url, &prData); err != nil {
		return prctx, nil, meta, err
	}

	var files []diff.FilePayload
	url = fmt.Sprintf("https://api.github.com/repos/%s/pulls/%d/files?per_page=100", repo, pr)
	if err := c.getJSON(ctx, token, url, &files); err != nil {
		return prctx, nil, meta, err
	}

	reviewable := files[:0:0]
	for _, f := range files {
		if IsReviewable(f.Filename) {
			reviewable = append(reviewable, f)
		}
	}

	c.logger.Info("pull request fetched",
		"repo", repo,
		"pr", pr,
		"files", len(files),
		"reviewable", len(reviewable),
	)

	prctx = review.PRContext{
		Repo:         repo,
		Number:       prData.Number,
		Title:        prData.Title,
		Description:  prData.Body,
		Author:       prData.User.Login,
		HeadSHA:      prData.Head.SHA,
		Additions:    prData.Additions,
		Deletions:    prData.Deletions,
		ChangedFiles: prData.ChangedFiles,
	}

	meta = diff.Metadata{
		ChangedFiles: prData.ChangedFiles,
		Additions:    prData.Additions,
		Deletions:    prData.Deletions,
	}

	return prctx, reviewable, meta, nil
}

func (c *client) getJSON(ctx context.Context, token, url string, out any) error {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == 404 || res.StatusCode == 410:
		return fmt.Errorf("%s: %w", url, ErrNotFound)
	case res.StatusCode == 403 || res.StatusCode == 429:
		return fmt.Errorf("%s: %w", url, ErrRateLimited)
	case res.StatusCode < 200 || res.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("github status %d: %s", res.StatusCode, string(msg))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *client) getToken(ctx context.Context) (string, error) {

	if t, ok := c.cache.Get(); ok {
		return t, nil
	}

	appJWT, err := c.createJWT()
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"https://api.github.com/app/installations/%s/access_tokens",
		c.cfg.GithubInstallationID,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", url, nil)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+appJWT)
	req.Header.Set("Accept", "application/vnd.github+json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("github token status %d: %s", res.StatusCode, string(msg))
	}

	var r struct {
		Token string `json:"token"`
	}

	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if r.Token == "" {
		return "", fmt.Errorf("empty installation token")
	}

	c.cache.Set(r.Token, 50*time.Minute)

	return r.Token, nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}

	block, _ := pem.Decode(b)
	if block == nil {
		return nil, fmt.Errorf("invalid pem")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return key, nil
	}

	pkcs8, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	privateKey, ok := pkcs8.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("pkcs8 key is not RSA")
	}

	return privateKey, nil
}

func (c *client) createJWT() (string, error) {

	key, err := loadPrivateKey(c.cfg.GithubPrivateKeyPath)
	if err != nil {
		return "", err
	}

	now := time.Now()

	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now.Add(-1 * time.Minute)),
		ExpiresAt: jwt.NewNumericDate(now.Add(9 * time.Minute)),
		Issuer:    c.cfg.GithubAppID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	return token.SignedString(key)
}
