package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient   *http.Client
	streamClient *http.Client
	baseURL      string
	apiKey       string
	origin       string
}

// Option настраивает Client
type Option func(*Client)

// WithAPIKey задает ключ, передаваемый в заголовке Authorization
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithOrigin задает токен, которым помечаются записи состояния (X-Origin)
func WithOrigin(origin string) Option {
	return func(c *Client) { c.origin = origin }
}

// WithTimeout задает таймаут обычных запросов
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Поток событий живет долго, таймаут задается через контекст
		streamClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ClientAPI = (*Client)(nil)

// GetState получает документ состояния
func (c *Client) GetState(ctx context.Context, id string) (*models.StateDocument, error) {
	var resp api.StateDocument
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/state/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get state request failed: %w", err)
	}

	state, err := resp.Data.ToState()
	if err != nil {
		return nil, fmt.Errorf("server returned invalid state: %w", err)
	}

	return &models.StateDocument{UpdatedAt: resp.UpdatedAt, ID: resp.ID, State: state}, nil
}

// PutState полностью заменяет документ состояния
func (c *Client) PutState(ctx context.Context, id string, state models.InventoryState) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/state/"+url.PathEscape(id), api.FromState(state), nil); err != nil {
		return fmt.Errorf("put state request failed: %w", err)
	}
	return nil
}

// ListHistory получает последние записи истории
func (c *Client) ListHistory(ctx context.Context, kind models.HistoryKind, limit int) ([]models.HistoryRecord, error) {
	path, err := historyPath(kind)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	switch kind {
	case models.HistoryKindSnapshot:
		var resp []api.Snapshot
		if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, fmt.Errorf("list snapshots request failed: %w", err)
		}
		records := make([]models.HistoryRecord, 0, len(resp))
		for _, snap := range resp {
			rec, err := snap.Record()
			if err != nil {
				return nil, fmt.Errorf("server returned invalid snapshot %d: %w", snap.ID, err)
			}
			records = append(records, rec)
		}
		return records, nil
	default:
		var resp []api.AreaInventory
		if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, fmt.Errorf("list area inventories request failed: %w", err)
		}
		records := make([]models.HistoryRecord, 0, len(resp))
		for _, inv := range resp {
			records = append(records, inv.Record())
		}
		return records, nil
	}
}

// InsertHistory создает запись истории
func (c *Client) InsertHistory(ctx context.Context, rec models.HistoryRecord) (*models.HistoryRecord, error) {
	path, err := historyPath(rec.Kind)
	if err != nil {
		return nil, err
	}

	switch rec.Kind {
	case models.HistoryKindSnapshot:
		if rec.Data == nil {
			return nil, fmt.Errorf("snapshot without data: %w", models.ErrMalformedState)
		}
		req := api.CreateSnapshotRequest{Title: rec.Title, Data: api.FromState(*rec.Data)}
		var resp api.Snapshot
		if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
			return nil, fmt.Errorf("create snapshot request failed: %w", err)
		}
		saved, err := resp.Record()
		if err != nil {
			return nil, fmt.Errorf("server returned invalid snapshot: %w", err)
		}
		return &saved, nil
	default:
		req := api.CreateAreaInventoryRequest{
			AreaName:      rec.AreaName,
			InventoryDate: rec.InventoryDate,
			Items:         api.FromAreaItems(rec.Items),
			AreaIndex:     rec.AreaIndex,
		}
		var resp api.AreaInventory
		if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
			return nil, fmt.Errorf("create area inventory request failed: %w", err)
		}
		saved := resp.Record()
		return &saved, nil
	}
}

// DeleteHistory удаляет запись истории по ID
func (c *Client) DeleteHistory(ctx context.Context, kind models.HistoryKind, id int64) error {
	path, err := historyPath(kind)
	if err != nil {
		return err
	}
	if err := c.doRequest(ctx, http.MethodDelete, path+"/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("delete history request failed: %w", err)
	}
	return nil
}

func historyPath(kind models.HistoryKind) (string, error) {
	switch kind {
	case models.HistoryKindSnapshot:
		return "/api/v1/snapshots", nil
	case models.HistoryKindArea:
		return "/api/v1/area-inventories", nil
	default:
		return "", fmt.Errorf("unknown history kind %q", kind)
	}
}

// newRequest создает запрос с общими заголовками
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.origin != "" {
		req.Header.Set(api.HeaderOrigin, c.origin)
	}
	return req, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := statusError(resp.StatusCode, respBody); err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// statusError переводит неуспешный статус в ошибку
func statusError(code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}

	message := strings.TrimSpace(string(body))
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	default:
		return fmt.Errorf("server error (%d): %s", code, message)
	}
}
