package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the job-board API. The zero token leaves requests
// unauthenticated; protected calls then fail with a 401 APIError.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
}

func New(baseURL, token string) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("empty base URL")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type jobEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Job     *Job   `json:"job"`
}

type jobsEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Jobs    []Job  `json:"jobs"`
}

func (c *Client) ListJobs(ctx context.Context, keyword string) ([]Job, error) {
	path := "/api/v1/jobs"
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		path += "?keyword=" + url.QueryEscape(keyword)
	}

	var env jobsEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id uuid.UUID) (Job, error) {
	var env jobEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/v1/jobs/"+id.String(), nil, &env); err != nil {
		return Job{}, err
	}
	if env.Job == nil {
		return Job{}, errors.New("missing job in response")
	}
	return *env.Job, nil
}

func (c *Client) MyJobs(ctx context.Context, keyword string) ([]Job, error) {
	path := "/api/v1/jobs/admin"
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		path += "?keyword=" + url.QueryEscape(keyword)
	}

	var env jobsEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Jobs, nil
}

func (c *Client) CreateJob(ctx context.Context, draft JobDraft) (Job, error) {
	var env jobEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/v1/jobs", draft, &env); err != nil {
		return Job{}, err
	}
	if env.Job == nil {
		return Job{}, errors.New("missing job in response")
	}
	return *env.Job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id uuid.UUID, draft JobDraft) (Job, error) {
	var env jobEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/v1/jobs/"+id.String(), draft, &env); err != nil {
		return Job{}, err
	}
	if env.Job == nil {
		return Job{}, errors.New("missing job in response")
	}
	return *env.Job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/jobs/"+id.String(), nil, nil)
}

// LoadJobs fetches the listing and replaces the store's cache, the way the
// listing view refreshes on navigation.
func (c *Client) LoadJobs(ctx context.Context, keyword string, store *Store) error {
	jobs, err := c.ListJobs(ctx, keyword)
	if err != nil {
		return err
	}
	store.SetJobs(jobs)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: failureMessage(raw)}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func failureMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(raw))
}
