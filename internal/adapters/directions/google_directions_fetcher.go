package directions

import (
	"context"
	"directions-route-service/internal/domain"
	"directions-route-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Google Directions API JSON endpoint.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/directions/json"

	defaultTimeout = 10 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// GoogleDirectionsFetcher implements ports.DirectionsFetcher using the Google
// Directions API. It performs exactly one HTTP call per chunk; retry policy is
// left to the caller.
//
// The fetcher is safe for concurrent use.
type GoogleDirectionsFetcher struct {
	session *http.Client
	apiKey  string
	baseURL string
	log     *zap.Logger
}

type GoogleOption func(*GoogleDirectionsFetcher)

// WithBaseURL points the fetcher at another endpoint (tests, proxies).
func WithBaseURL(u string) GoogleOption {
	return func(g *GoogleDirectionsFetcher) { g.baseURL = u }
}

func WithHTTPClient(c *http.Client) GoogleOption {
	return func(g *GoogleDirectionsFetcher) { g.session = c }
}

func WithLogger(l *zap.Logger) GoogleOption {
	return func(g *GoogleDirectionsFetcher) { g.log = l }
}

func NewGoogleDirectionsFetcher(apiKey string, opts ...GoogleOption) (*GoogleDirectionsFetcher, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google directions api key is empty")
	}

	g := &GoogleDirectionsFetcher{
		session: &http.Client{Timeout: defaultTimeout},
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}

	return g, nil
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		OverviewPolyline *struct {
			Points *string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

// FetchPolyline requests directions for chunk and returns the encoded overview polyline.
func (g *GoogleDirectionsFetcher) FetchPolyline(ctx context.Context, chunk domain.Chunk) (_ string, err error) {
	defer obs.Time(ctx, g.log, "google.FetchPolyline")(&err)

	req, err := g.newRequest(ctx, chunk)
	if err != nil {
		return "", fmt.Errorf("google directions: %w: %w", domain.ErrTransport, err)
	}

	body, err := g.do(req)
	if err != nil {
		return "", fmt.Errorf("google directions: %w", err)
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return "", fmt.Errorf("google directions: %w: %w: empty body", domain.ErrUnexpectedStatus, domain.ErrMissingPolyline)
	}

	var decoded directionsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("google directions: %w: %w: %v", domain.ErrUnexpectedStatus, domain.ErrMalformedResponse, err)
	}

	switch decoded.Status {
	case statusOK:
	case statusZeroResults:
		return "", fmt.Errorf("google directions: %w: %w", domain.ErrUnexpectedStatus, domain.ErrZeroResults)
	default:
		return "", fmt.Errorf(
			"google directions: %w: %w: status %q: %s",
			domain.ErrUnexpectedStatus, domain.ErrServiceStatus, decoded.Status, decoded.ErrorMessage,
		)
	}

	if len(decoded.Routes) == 0 ||
		decoded.Routes[0].OverviewPolyline == nil ||
		decoded.Routes[0].OverviewPolyline.Points == nil {
		return "", fmt.Errorf("google directions: %w: %w", domain.ErrUnexpectedStatus, domain.ErrMissingPolyline)
	}

	return *decoded.Routes[0].OverviewPolyline.Points, nil
}

func (g *GoogleDirectionsFetcher) newRequest(ctx context.Context, chunk domain.Chunk) (*http.Request, error) {
	endpoint, err := url.Parse(g.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	endpoint.RawQuery = BuildQuery(chunk, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// BuildQuery renders the query string exactly as the service expects:
// coordinates and the via: waypoint list are sent unescaped, the key is escaped.
func BuildQuery(chunk domain.Chunk, apiKey string) string {
	var b strings.Builder
	b.WriteString("origin=")
	b.WriteString(chunk.Origin.String())
	b.WriteString("&destination=")
	b.WriteString(chunk.Destination.String())

	if via := chunk.Via(); len(via) > 0 {
		b.WriteString("&waypoints=")
		b.WriteString(strings.Join(via, "|"))
	}

	b.WriteString("&key=")
	b.WriteString(url.QueryEscape(apiKey))
	return b.String()
}

// do sends req and returns the body of a 200 or 204 response.
func (g *GoogleDirectionsFetcher) do(req *http.Request) ([]byte, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, redactKey(err, g.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (e *httpStatusError) Is(target error) bool {
	return target == domain.ErrUnexpectedStatus || target == domain.ErrHTTPStatus
}

// redactKey keeps the api key out of *url.Error messages that end up in logs.
func redactKey(err error, key string) error {
	var ue *url.Error
	if key == "" || !errors.As(err, &ue) {
		return err
	}
	return &url.Error{
		Op:  ue.Op,
		URL: strings.ReplaceAll(ue.URL, url.QueryEscape(key), "REDACTED"),
		Err: ue.Err,
	}
}
