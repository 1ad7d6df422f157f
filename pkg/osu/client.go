package osu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const DefaultBaseURL = "https://osu.ppy.sh"

var ErrNotFound = errors.New("osu: resource not found")

// APIError is returned for any non-2xx response other than 404.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("osu: api returned %d: %s", e.StatusCode, e.Body)
}

// Endpoint returns the OAuth2 endpoints of an osu! instance.
func Endpoint(baseURL string) oauth2.Endpoint {
	baseURL = strings.TrimRight(baseURL, "/")
	return oauth2.Endpoint{
		AuthURL:   baseURL + "/oauth/authorize",
		TokenURL:  baseURL + "/oauth/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// Client talks to the osu! API v2.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client authenticated with the client-credentials grant.
// Tokens are fetched lazily and refreshed by the oauth2 transport.
func NewClient(clientID, clientSecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     Endpoint(baseURL).TokenURL,
		Scopes:       []string{"public"},
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	hc := conf.Client(context.Background())
	hc.Timeout = 15 * time.Second

	return NewClientWithHTTP(baseURL, hc)
}

// NewClientWithHTTP uses hc as is, which must already add authorization.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// Beatmap fetches a single beatmap with its beatmapset.
func (c *Client) Beatmap(ctx context.Context, id int64) (*Beatmap, error) {
	var b Beatmap
	if err := c.do(ctx, c.http, http.MethodGet, fmt.Sprintf("/api/v2/beatmaps/%d", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// BeatmapAttributes returns the difficulty attributes of a beatmap under mods.
func (c *Client) BeatmapAttributes(ctx context.Context, id int64, mods ...string) (*DifficultyAttributes, error) {
	req := attributesRequest{Mods: []string{}, Ruleset: "osu"}
	for _, m := range mods {
		if m != "" {
			req.Mods = append(req.Mods, m)
		}
	}

	var res attributesResponse
	if err := c.do(ctx, c.http, http.MethodPost, fmt.Sprintf("/api/v2/beatmaps/%d/attributes", id), req, &res); err != nil {
		return nil, err
	}
	return &res.Attributes, nil
}

// OwnProfile returns the user owning the token.
func (c *Client) OwnProfile(ctx context.Context, ts oauth2.TokenSource) (*User, error) {
	var u User
	if err := c.do(ctx, oauth2.NewClient(ctx, ts), http.MethodGet, "/api/v2/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("osu: encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-version", "20240130")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{StatusCode: resp.StatusCode, Body: string(msg)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("osu: decode %s: %w", path, err)
	}
	return nil
}
