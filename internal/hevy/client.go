package hevy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gzclp/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// DefaultPageSize is the biggest page the hevy api hands out
	DefaultPageSize = 10

	oneHour             = 60 * 60
	routinesCacheExpire = oneHour * 1 // routines rarely change
	routinesCacheKey    = "routines"
)

var (
	ErrUnauthorized = errors.New("hevy api: unauthorized")
	ErrNotFound     = errors.New("hevy api: not found")
)

// Client talks to the Hevy workout log API. Workout pages are always
// fetched fresh so a sync never analyzes stale data; only the routines
// list is cached.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	cache      *freecache.Cache
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, pageSize int, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		pageSize:   pageSize,
		cache:      freecache.NewCache(megabyte),
		httpClient: httpClient,
	}
}

// FetchWorkouts returns one page of workout logs, newest first, together
// with the total page count. Pages start at 1.
func (c *Client) FetchWorkouts(ctx context.Context, page int) (_ *WorkoutsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevyClient.fetchWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))

	workoutsUrl := fmt.Sprintf("%s/v1/workouts?page=%d&pageSize=%d", c.baseURL, page, c.pageSize)
	respBytes, err := c.get(ctx, workoutsUrl)
	if err != nil {
		return nil, err
	}

	var workoutsResp WorkoutsResponse
	if err := json.Unmarshal(respBytes, &workoutsResp); err != nil {
		return nil, fmt.Errorf("unmarshal workouts response: %w", err)
	}

	return &workoutsResp, nil
}

// FetchAllWorkouts walks all workout pages. The context is checked
// between pages so a cancelled sync stops without finishing the walk.
func (c *Client) FetchAllWorkouts(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevyClient.fetchAllWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var workouts []Workout
	page := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		workoutsResp, err := c.FetchWorkouts(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetch workouts page %d: %w", page, err)
		}

		workouts = append(workouts, workoutsResp.Workouts...)
		if page >= workoutsResp.PageCount {
			break
		}
		page++
	}

	span.SetAttributes(attribute.Int("workouts", len(workouts)))

	return workouts, nil
}

// FetchRoutines returns the user's routines, served from a short-lived
// cache when possible.
func (c *Client) FetchRoutines(ctx context.Context) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevyClient.fetchRoutines")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if routinesBytes, cacheErr := c.cache.Get([]byte(routinesCacheKey)); cacheErr == nil {
		var routinesResp RoutinesResponse
		if err := json.Unmarshal(routinesBytes, &routinesResp); err == nil {
			log.Tracef("hevy client: %d routines served from cache", len(routinesResp.Routines))
			return routinesResp.Routines, nil
		}
		log.Errorf("hevy client: unmarshal cached routines failed, refetching")
	}

	routinesUrl := fmt.Sprintf("%s/v1/routines?page=1&pageSize=10", c.baseURL)
	respBytes, err := c.get(ctx, routinesUrl)
	if err != nil {
		return nil, err
	}

	var routinesResp RoutinesResponse
	if err := json.Unmarshal(respBytes, &routinesResp); err != nil {
		return nil, fmt.Errorf("unmarshal routines response: %w", err)
	}

	if err := c.cache.Set([]byte(routinesCacheKey), respBytes, routinesCacheExpire); err != nil {
		log.Errorf("hevy client: write routines cache: %s", err)
	}

	return routinesResp.Routines, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("hevy api: unexpected status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response bytes: %w", err)
	}

	return respBytes, nil
}
