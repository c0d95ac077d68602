package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/iudanet/stocktake/pkg/api"
)

// ErrStreamClosed indicates that the server ended the event stream
var ErrStreamClosed = errors.New("event stream closed by server")

// Subscribe открывает SSE поток изменений документа и вызывает handle на каждое
// событие "change". Возвращает nil при отмене ctx.
func (c *Client) Subscribe(ctx context.Context, id string, handle func(api.ChangeEvent)) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/state/"+url.PathEscape(id)+"/events", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.streamClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("subscribe request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if err := statusError(resp.StatusCode, body); err != nil {
			return fmt.Errorf("subscribe request failed: %w", err)
		}
	}

	err = readEvents(resp.Body, handle)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// readEvents разбирает поток text/event-stream. Поддерживаются поля event и data;
// комментарии (строки с ':') пропускаются.
func readEvents(r io.Reader, handle func(api.ChangeEvent)) error {
	scanner := bufio.NewScanner(r)
	var (
		eventName string
		data      strings.Builder
	)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			// Пустая строка завершает событие
			if data.Len() > 0 && (eventName == "" || eventName == "change") {
				var ev api.ChangeEvent
				if err := json.Unmarshal([]byte(data.String()), &ev); err == nil {
					handle(ev)
				}
			}
			eventName = ""
			data.Reset()
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read event stream: %w", err)
	}
	return ErrStreamClosed
}
