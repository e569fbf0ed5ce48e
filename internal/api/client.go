package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/todos/internal/model"
)

// DefaultBaseURL is the public mock service the client talks to unless
// configured otherwise. It echoes created ids but persists nothing.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

const contentTypeJSON = "application/json"

// Client talks JSON over HTTP to the to-do service.
type Client struct {
	baseURL string
	http    *http.Client
	limit   int
	token   string
	log     zerolog.Logger
}

var _ Service = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.http.Timeout = d } }

// WithLimit caps ListTodos to the first n items. Zero lists everything.
func WithLimit(n int) Option { return func(c *Client) { c.limit = n } }

// WithToken sends "Authorization: Bearer <token>" on every request.
func WithToken(token string) Option { return func(c *Client) { c.token = token } }

func WithLogger(l zerolog.Logger) Option { return func(c *Client) { c.log = l } }

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListTodos(ctx context.Context) ([]model.Todo, error) {
	q := url.Values{}
	if c.limit > 0 {
		q.Set("_limit", strconv.Itoa(c.limit))
	}
	var todos []model.Todo
	if err := c.do(ctx, http.MethodGet, "/todos", q, nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateTodo(ctx context.Context, draft model.Draft) (model.Todo, error) {
	var todo model.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", nil, draft, &todo); err != nil {
		return model.Todo{}, err
	}
	return todo, nil
}

func (c *Client) SetCompleted(ctx context.Context, id int, completed bool) error {
	return c.do(ctx, http.MethodPatch, todoPath(id), nil, model.Completion{Completed: completed}, nil)
}

func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, todoPath(id), nil, nil, nil)
}

func todoPath(id int) string { return "/todos/" + strconv.Itoa(id) }

// do sends one request and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s body", method, path)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return &NetworkError{Method: method, Path: path, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &ServerError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		var netErr net.Error
		if ctx.Err() != nil || errors.As(err, &netErr) {
			return &NetworkError{Method: method, Path: path, Err: errors.WithStack(err)}
		}
		return &ServerError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Err:        errors.Wrap(err, "decode response"),
		}
	}
	return nil
}
