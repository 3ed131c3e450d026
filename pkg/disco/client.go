// Package disco is a job controller client for the Disco master's HTTP
// control API. It serves as the monitor's collaborator.
package disco

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/arthur-debert/discomon/pkg/errors"
	"github.com/arthur-debert/discomon/pkg/logging"
	"github.com/arthur-debert/discomon/pkg/monitor"
	"github.com/arthur-debert/discomon/pkg/types"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultMasterURL is where a local Disco master listens
	DefaultMasterURL = "http://localhost:8989"

	defaultTimeout = 30 * time.Second

	rawEventsPath = "/disco/ctrl/rawevents"
	jobInfoPath   = "/disco/ctrl/jobinfo"
)

// Client is an HTTP client for a Disco master.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
}

// NewClient creates a client for the master at baseURL. A non-positive
// timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "discomon")
	return &Client{
		client: client,
		logger: logging.GetLogger("disco.Client").With().Str("master", baseURL).Logger(),
	}
}

// Events returns the job's events recorded after the since cursor. The cursor
// is a byte offset into the master's event log.
func (c *Client) Events(ctx context.Context, job string, since int64) (types.EventBatch, error) {
	body, err := c.get(ctx, rawEventsPath, map[string]string{
		"name":   job,
		"offset": strconv.FormatInt(since, 10),
	})
	if err != nil {
		return types.EventBatch{}, err
	}
	batch := ParseEvents(body, since, c.logger)
	c.logger.Trace().
		Str("job", job).
		Int64("since", since).
		Int64("next", batch.Next).
		Int("events", len(batch.Events)).
		Msg("Fetched events")
	return batch, nil
}

// JobInfo returns the job's task counters and state
func (c *Client) JobInfo(ctx context.Context, job string) (*types.JobInfo, error) {
	body, err := c.get(ctx, jobInfoPath, map[string]string{"name": job})
	if err != nil {
		return nil, err
	}

	var info types.JobInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, errors.Wrapf(err, errors.ErrCollaboratorDecode, "invalid job info for %s", job).
			WithDetail("job", job)
	}
	return &info, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, errors.Newf(errors.ErrCollaboratorStatus, "%s returned %s", path, resp.Status()).
			WithDetail("status", resp.StatusCode()).
			WithDetail("path", path)
	}
	return resp.Body(), nil
}

// Job is a job on a specific master
type Job struct {
	Client  *Client
	JobName string
}

// Master returns the client for the job's master
func (j Job) Master() monitor.Collaborator {
	if j.Client == nil {
		return nil
	}
	return j.Client
}

// Name returns the job name
func (j Job) Name() string {
	return j.JobName
}

// Finished reports whether the master no longer considers the job active
func Finished(info *types.JobInfo) bool {
	return info != nil && info.Active != "" && info.Active != "active"
}
