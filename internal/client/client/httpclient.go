package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lfgames/gameslib/internal/client/models"
	"github.com/lfgames/gameslib/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *HTTPClient) SignUp(ctx context.Context, email, password, userName string) (*models.Session, error) {
	var out models.Session
	if err := c.do(ctx, http.MethodPost, "/user", "", credentials{email, password, userName}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password, userName string) (*models.Session, error) {
	var out models.Session
	if err := c.do(ctx, http.MethodPost, "/signin", "", credentials{email, password, userName}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/signout", token, nil, nil)
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", token, nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *HTTPClient) AddGame(ctx context.Context, token string, game *models.NewGame) (*models.Game, error) {
	var out struct {
		Game *models.Game `json:"game"`
	}
	in := struct {
		Game *models.NewGame `json:"game"`
	}{game}
	if err := c.do(ctx, http.MethodPost, "/games", token, in, &out); err != nil {
		return nil, err
	}
	return out.Game, nil
}

func (c *HTTPClient) ListGames(ctx context.Context, token string) ([]*models.Game, error) {
	var out struct {
		Games []*models.Game `json:"games"`
	}
	if err := c.do(ctx, http.MethodGet, "/games", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Games, nil
}

func (c *HTTPClient) SetCompleted(ctx context.Context, token string, gameID int64, completed bool) (*models.Game, error) {
	var out struct {
		Game *models.Game `json:"game"`
	}
	in := struct {
		Completed bool `json:"completed"`
	}{completed}
	path := "/games/" + strconv.FormatInt(gameID, 10) + "/completed"
	if err := c.do(ctx, http.MethodPut, path, token, in, &out); err != nil {
		return nil, err
	}
	return out.Game, nil
}

// do sends body as JSON and decodes a 2xx response into out when out is
// not nil.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	var e struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&e)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusPaymentRequired:
		return ErrRevoked
	default:
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}
}
