package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventboard/internal/domain"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Config holds the settings of the directory client.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api/v1.
	BaseURL string
	// Token is an optional bearer token.
	Token   string
	Timeout time.Duration
	// Location reads instants sent without an offset. Defaults to time.Local.
	Location *time.Location
}

type httpDirectory struct {
	client  *http.Client
	baseURL string
	auth    string
	loc     *time.Location
	logger  *slog.Logger
}

// NewHTTPDirectory returns an EventDirectory that calls the remote event API.
// If client is nil a client with cfg.Timeout is used.
func NewHTTPDirectory(cfg Config, client *http.Client, logger *slog.Logger) domain.EventDirectory {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &httpDirectory{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		auth:    bearerHeader(cfg.Token, time.Now(), logger),
		loc:     loc,
		logger:  logger,
	}
}

func (d *httpDirectory) ListEvents(ctx context.Context, identity string, page, size int) (*domain.CatalogPage, error) {
	q := url.Values{}
	q.Set("mssvId", identity)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	req, err := d.newRequest(ctx, http.MethodGet, "/event?"+q.Encode(), nil, "")
	if err != nil {
		return nil, err
	}
	body, err := d.do(req)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var data listResponse
	if err := json.Unmarshal(unwrapData(body, "content"), &data); err != nil {
		return nil, fmt.Errorf("failed to decode event list: %w", err)
	}
	events := make([]*domain.Event, 0, len(data.Content))
	for i := range data.Content {
		ev := data.Content[i].toDomain(d.loc)
		if identity == "" {
			ev.RegistrationStatus = nil
		}
		events = append(events, ev)
	}
	return domain.NewCatalogPage(events, page, size), nil
}

func (d *httpDirectory) GetEvent(ctx context.Context, id, identity string) (*domain.Event, error) {
	path := "/event/" + url.PathEscape(id)
	if identity != "" {
		path += "?" + url.Values{"mssvId": {identity}}.Encode()
	}
	req, err := d.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	body, err := d.do(req)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	var dto eventDTO
	if err := json.Unmarshal(unwrapData(body, "id"), &dto); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}
	ev := dto.toDomain(d.loc)
	if identity == "" {
		ev.RegistrationStatus = nil
	}
	return ev, nil
}

func (d *httpDirectory) Register(ctx context.Context, identity, eventID string) error {
	payload, err := json.Marshal(applicationRequest{MssvID: identity, EventID: eventID})
	if err != nil {
		return fmt.Errorf("failed to encode application: %w", err)
	}
	req, err := d.newRequest(ctx, http.MethodPost, "/event/application", bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	if _, err := d.do(req); err != nil {
		return fmt.Errorf("register for event %s: %w", eventID, err)
	}
	return nil
}

func (d *httpDirectory) CreateEvent(ctx context.Context, draft *domain.EventDraft) (*domain.Event, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}
	req, err := d.newRequest(ctx, http.MethodPost, "/event", bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}
	body, err := d.do(req)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	var dto eventDTO
	if err := json.Unmarshal(unwrapData(body, "id"), &dto); err != nil {
		return nil, fmt.Errorf("failed to decode created event: %w", err)
	}
	return dto.toDomain(d.loc), nil
}

func (d *httpDirectory) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart body: %w", err)
	}
	req, err := d.newRequest(ctx, http.MethodPost, "/upload/image", &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}
	body, err := d.do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return decodeImageURI(body), nil
}

func (d *httpDirectory) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if d.auth != "" {
		req.Header.Set("Authorization", d.auth)
	}
	return req, nil
}

// do executes req and returns the body of a 2xx response.
func (d *httpDirectory) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Debug("directory request failed", "method", req.Method, "path", req.URL.Path, "err", err)
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, networkError(err)
	}
	d.logger.Debug("directory request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", req.Header.Get("X-Request-ID"),
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, body)
	}
	return body, nil
}

// decodeImageURI accepts a bare URI, a JSON string, or an object carrying the
// URI under data, url or image.
func decodeImageURI(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		for _, key := range []string{"data", "url", "image"} {
			if raw, ok := obj[key]; ok && json.Unmarshal(raw, &s) == nil {
				return s
			}
		}
		return ""
	}
	return string(trimmed)
}
