// Package catalog looks up courses in the institutional course-outlines API
// so students can attach uploaded notes to real courses without typing
// titles by hand.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lecture-notes-be/internal/dto"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
)

// Client fetches course listings with an in-memory TTL cache in front of the
// upstream API. The upstream catalog changes at most once per term, so stale
// reads are harmless.
type Client struct {
	httpClient *resty.Client
	cache      *cache.Cache
}

func NewClient(baseURL string, cacheTTL time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &Client{
		httpClient: httpClient,
		cache:      cache.New(cacheTTL, 10*time.Minute),
	}
}

type catalogEntry struct {
	Value string `json:"value"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ListCourses returns the course numbers offered for a department in a term,
// e.g. ListCourses(ctx, "2026", "fall", "cmpt").
func (c *Client) ListCourses(ctx context.Context, year, term, department string) ([]dto.CatalogCourse, error) {
	key := fmt.Sprintf("%s/%s/%s", year, term, department)
	if cached, found := c.cache.Get(key); found {
		return cached.([]dto.CatalogCourse), nil
	}

	var entries []catalogEntry
	err := retry.Do(
		func() error {
			resp, err := c.httpClient.R().
				SetContext(ctx).
				SetResult(&entries).
				Get(fmt.Sprintf("/%s/%s/%s", year, term, department))
			if err != nil {
				return err
			}
			if resp.IsError() {
				if resp.StatusCode() >= 500 {
					return fmt.Errorf("catalog responded %d", resp.StatusCode())
				}
				return retry.Unrecoverable(fmt.Errorf("catalog responded %d", resp.StatusCode()))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog %s: %w", key, err)
	}

	courses := make([]dto.CatalogCourse, 0, len(entries))
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = e.Text
		}
		courses = append(courses, dto.CatalogCourse{
			Code:  strings.ToUpper(department) + " " + e.Value,
			Title: title,
		})
	}

	c.cache.Set(key, courses, cache.DefaultExpiration)
	return courses, nil
}
