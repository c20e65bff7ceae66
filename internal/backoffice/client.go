package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Metrics
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ibdesk_upstream_requests_total",
		Help: "Total back-office API requests",
	}, []string{"endpoint", "outcome"})

	upstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ibdesk_upstream_request_duration_seconds",
		Help:    "Back-office API request latency",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"endpoint"})
)

// Client — типизированный клиент back-office REST API.
// Все вызовы ходят с таймаутом: зависший запрос заканчивается
// TransportError, а не вечным ожиданием.
type Client struct {
	base string
	http *http.Client
	log  *zap.SugaredLogger
}

// NewClient создаёт клиент. baseURL — корень API без завершающего слеша,
// например https://host/api/customer.
func NewClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  logger,
	}
}

// getJSON выполняет GET и декодирует конверт ответа.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) Outcome {
	u := c.base + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Outcome{Status: StatusTransportError, Message: err.Error()}
	}
	return c.do(path, req)
}

// postJSON отправляет JSON-тело методом POST.
func (c *Client) postJSON(ctx context.Context, path string, payload any) Outcome {
	b, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Status: StatusTransportError, Message: err.Error()}
	}
	u := c.base + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return Outcome{Status: StatusTransportError, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(path, req)
}

// del выполняет DELETE по пути с подставленным ключом.
func (c *Client) del(ctx context.Context, path string) Outcome {
	u := c.base + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return Outcome{Status: StatusTransportError, Message: err.Error()}
	}
	return c.do(path, req)
}

func (c *Client) do(endpoint string, req *http.Request) Outcome {
	// метрики помечаем по шаблону пути, без query и ключей
	endpoint = metricEndpoint(endpoint)
	timer := prometheus.NewTimer(upstreamLatency.WithLabelValues(endpoint))
	defer timer.ObserveDuration()

	resp, err := c.http.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		c.log.Warnw("back-office request failed", "endpoint", endpoint, "error", err)
		return Outcome{Status: StatusTransportError, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	out := DecodeEnvelope(resp.StatusCode, resp.Status, body)
	upstreamRequests.WithLabelValues(endpoint, outcomeLabel(out.Status)).Inc()
	if out.Status == StatusAppError {
		c.log.Warnw("back-office app error", "endpoint", endpoint, "message", out.Message)
	}
	return out
}

// metricEndpoint обрезает подставленный в путь ключ у DELETE-эндпоинтов.
func metricEndpoint(path string) string {
	path = strings.TrimLeft(path, "/")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	for _, prefix := range []string{"auth/deleteCustomer/", "master/deleteIbMaster/"} {
		if strings.HasPrefix(path, prefix) {
			return strings.TrimSuffix(prefix, "/")
		}
	}
	return path
}

func outcomeLabel(s Status) string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusAppError:
		return "app_error"
	default:
		return "transport_error"
	}
}
