// Package client calls a jankenoboe server over HTTP.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/jankenoboe/jankenoboe/internal/learning"
	"github.com/jankenoboe/jankenoboe/internal/review"
	"github.com/jankenoboe/jankenoboe/internal/server"
)

// Client implements the learning operations against a remote server.
// Error statuses are mapped back to the learning error kinds.
type Client struct {
	httpClient *resty.Client
}

func NewClient(serverURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(serverURL, "/"))
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(timeout)

	return &Client{
		httpClient: client,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

func (client *Client) Due(ctx context.Context, limit int, lookahead time.Duration) ([]learning.DueRecord, error) {
	var result server.ListResponse[learning.DueRecord]
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(windowParams(limit, lookahead)).
		SetResult(&result).
		SetError(&server.ErrorResponse{}).
		Get("/learning/due")
	if err := responseError("Get", response, err); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (client *Client) Enroll(ctx context.Context, req learning.EnrollRequest) (*learning.EnrollResult, error) {
	relearnStartLevel := req.RelearnStartLevel
	var result learning.EnrollResult
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(server.BatchRequest{
			SongIDs:           req.SongIDs,
			RelearnSongIDs:    req.RelearnSongIDs,
			RelearnStartLevel: &relearnStartLevel,
		}).
		SetResult(&result).
		SetError(&server.ErrorResponse{}).
		Post("/learning/batch")
	if err := responseError("Post", response, err); err != nil {
		return nil, err
	}
	return &result, nil
}

func (client *Client) Advance(ctx context.Context, ids []string) (*learning.AdvanceResult, error) {
	var result learning.AdvanceResult
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(server.LevelUpRequest{IDs: ids}).
		SetResult(&result).
		SetError(&server.ErrorResponse{}).
		Post("/learning/level-up")
	if err := responseError("Post", response, err); err != nil {
		return nil, err
	}
	return &result, nil
}

func (client *Client) BySongIDs(ctx context.Context, songIDs []string) ([]learning.SongRecord, error) {
	var result server.ListResponse[learning.SongRecord]
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("song_ids", strings.Join(songIDs, ",")).
		SetResult(&result).
		SetError(&server.ErrorResponse{}).
		Get("/learning/by-song")
	if err := responseError("Get", response, err); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (client *Client) BuildReport(ctx context.Context, limit int, lookahead time.Duration) (*review.Report, error) {
	var result review.Report
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(windowParams(limit, lookahead)).
		SetResult(&result).
		SetError(&server.ErrorResponse{}).
		Get("/learning/review")
	if err := responseError("Get", response, err); err != nil {
		return nil, err
	}
	return &result, nil
}

func windowParams(limit int, lookahead time.Duration) map[string]string {
	return map[string]string{
		"limit":          strconv.Itoa(limit),
		"offset_seconds": strconv.FormatInt(int64(lookahead/time.Second), 10),
	}
}

// responseError converts a transport failure or an error status into an error.
func responseError(method string, response *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("httpClient.%s > %w", method, err)
	}
	if !response.IsError() {
		return nil
	}

	message := response.String()
	if body, ok := response.Error().(*server.ErrorResponse); ok && body.Error != "" {
		message = body.Error
	}

	switch response.StatusCode() {
	case http.StatusBadRequest:
		return learning.NewError(learning.ErrInvalidInput, "%s", message)
	case http.StatusNotFound:
		return learning.NewError(learning.ErrNotFound, "%s", message)
	case http.StatusConflict:
		return learning.NewError(learning.ErrInvalidState, "%s", message)
	default:
		return fmt.Errorf("response error %d: %s", response.StatusCode(), message)
	}
}
