package post

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

	"github.com/2beens/postclient/internal/dialog"
	"github.com/2beens/postclient/internal/telemetry/metrics"
	"github.com/2beens/postclient/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const postsPath = "/posts/"

//go:generate mockgen -source=$GOFILE -destination=client_mocks_test.go -package=post_test

type presenter interface {
	Confirm(ctx context.Context, c dialog.Confirmation) (bool, error)
	Notify(ctx context.Context, n dialog.Notification)
}

// Client issues CRUD requests against a posts REST api. Every method returns
// exactly once, and every failure comes back as a *RequestError.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	presenter  presenter
	texts      dialog.Texts
	metrics    *metrics.Manager
}

// NewClient builds a Client for cfg. A nil httpClient falls back to
// http.DefaultClient, a nil presenter to one that declines every
// confirmation, and nil metrics to a private registry.
func NewClient(
	cfg Config,
	httpClient *http.Client,
	presenter presenter,
	texts dialog.Texts,
	metricsManager *metrics.Manager,
) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if presenter == nil {
		presenter = dialog.NewScriptedPresenter(false)
	}
	if metricsManager == nil {
		metricsManager = metrics.NewManager("postclient", "client", prometheus.NewRegistry())
	}

	headers := cfg.Headers
	if headers == nil {
		headers = DefaultHeaders()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    headers.Clone(),
		httpClient: httpClient,
		presenter:  presenter,
		texts:      texts,
		metrics:    metricsManager,
	}
}

func (c *Client) ListAll(ctx context.Context) (_ []Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postClient.ListAll")
	defer endSpan(span, &err)

	var posts []Post
	if err := c.do(ctx, http.MethodGet, c.postsURL(), nil, false, &posts); err != nil {
		log.Errorf("list posts: %s", err)
		return nil, err
	}
	if posts == nil {
		posts = []Post{}
	}

	span.SetAttributes(attribute.Int("posts.count", len(posts)))
	log.Debugf("listed %d posts", len(posts))

	return posts, nil
}

func (c *Client) Create(ctx context.Context, post Post) (_ Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postClient.Create")
	defer endSpan(span, &err)

	var created Post
	if err := c.do(ctx, http.MethodPost, c.postsURL(), post, true, &created); err != nil {
		log.Errorf("create post: %s", err)
		return nil, err
	}

	log.Debugf("created %s", created)
	return created, nil
}

// Find fetches one post. A missing post is reported like any other failed
// request, there is no dedicated not-found error.
func (c *Client) Find(ctx context.Context, id int) (_ Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postClient.Find")
	span.SetAttributes(attribute.Int("post.id", id))
	defer endSpan(span, &err)

	var found Post
	if err := c.do(ctx, http.MethodGet, c.postURL(id), nil, false, &found); err != nil {
		log.Errorf("find post %d: %s", id, err)
		return nil, err
	}

	return found, nil
}

// Update replaces the post with the given id and, once the server accepted
// it, shows the "updated" notification.
func (c *Client) Update(ctx context.Context, id int, post Post) (_ Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postClient.Update")
	span.SetAttributes(attribute.Int("post.id", id))
	defer endSpan(span, &err)

	var updated Post
	if err := c.do(ctx, http.MethodPut, c.postURL(id), post, true, &updated); err != nil {
		log.Errorf("update post %d: %s", id, err)
		return nil, err
	}

	c.notify(ctx, c.texts.UpdatedNotification())

	return updated, nil
}

// Remove asks for confirmation first and only then sends the DELETE.
// A declined confirmation returns (nil, nil): nothing is sent and it is not
// an error. A confirmed delete returns a non-nil (possibly empty) record.
func (c *Client) Remove(ctx context.Context, id int) (_ Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "postClient.Remove")
	span.SetAttributes(attribute.Int("post.id", id))
	defer endSpan(span, &err)

	confirmed, err := c.presenter.Confirm(ctx, c.texts.DeleteConfirmation())
	if err != nil {
		c.metrics.CounterConfirmations.WithLabelValues(metrics.ConfirmationFailed).Inc()
		log.Errorf("confirm delete of post %d: %s", id, err)
		return nil, networkError(fmt.Errorf("confirm delete of post %d: %w", id, err))
	}

	span.SetAttributes(attribute.Bool("post.delete.confirmed", confirmed))
	if !confirmed {
		c.metrics.CounterConfirmations.WithLabelValues(metrics.ConfirmationDeclined).Inc()
		log.Debugf("delete of post %d declined", id)
		return nil, nil
	}
	c.metrics.CounterConfirmations.WithLabelValues(metrics.ConfirmationConfirmed).Inc()

	var deleted Post
	if err := c.do(ctx, http.MethodDelete, c.postURL(id), nil, true, &deleted); err != nil {
		log.Errorf("delete post %d: %s", id, err)
		return nil, err
	}
	if deleted == nil {
		deleted = Post{}
	}

	c.notify(ctx, c.texts.DeletedNotification())

	return deleted, nil
}

func (c *Client) notify(ctx context.Context, n dialog.Notification) {
	c.metrics.CounterNotifications.WithLabelValues(n.Title).Inc()
	c.presenter.Notify(ctx, n)
}

// do sends one request and decodes a JSON response into out. An empty
// response body leaves out untouched.
func (c *Client) do(
	ctx context.Context,
	method, url string,
	body any,
	withHeaders bool,
	out any,
) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return networkError(fmt.Errorf("marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return networkError(err)
	}
	if withHeaders {
		for name, values := range c.headers {
			for _, v := range values {
				req.Header.Add(name, v)
			}
		}
	}

	log.Debugf("calling posts api: %s %s", method, url)

	start := time.Now()
	c.metrics.GaugeInFlightRequests.Inc()
	resp, err := c.httpClient.Do(req)
	c.metrics.GaugeInFlightRequests.Dec()
	c.metrics.HistogramRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.CounterRequests.WithLabelValues(method, "error").Inc()
		return networkError(err)
	}
	defer resp.Body.Close()

	c.metrics.CounterRequests.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return statusError(method, url, resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return parseError(url, resp.StatusCode, fmt.Errorf("read response body: %w", err))
	}

	if len(bytes.TrimSpace(respBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return parseError(url, resp.StatusCode, err)
	}

	return nil
}

func (c *Client) postsURL() string {
	return c.baseURL + postsPath
}

func (c *Client) postURL(id int) string {
	return c.baseURL + postsPath + strconv.Itoa(id)
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
