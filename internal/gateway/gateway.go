// Package gateway клиент REST API платформы пожертвований (базовый путь /api).
//
// Ошибки транспорта возвращаются как *entities.NetworkError, ответы с
// не-2xx статусом как *entities.ServerError. Повторов нет: решение о
// повторе принимает пользователь.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/food-donation-service/internal/config"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
)

const maxBodySize = 4 << 20

type tokenKey struct{}

// WithToken кладет токен платформы в контекст. Все вызовы клиента с этим
// контекстом уйдут с заголовком Authorization: Bearer.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type Client struct {
	logger  *slog.Logger
	baseURL string
	http    *http.Client
}

func New(logger *slog.Logger, cfg config.Platform) *Client {
	return &Client{
		logger:  logger.With(slog.String("component", "gateway")),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	start := time.Now()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("gateway %s: encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("gateway %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		observe(op, outcomeNetwork, start)
		c.logger.WarnContext(ctx, "platform unreachable", slog.String("op", op), slog.Any("error", err))
		return &entities.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		observe(op, outcomeNetwork, start)
		return &entities.NetworkError{Op: op, Err: err}
	}

	c.logger.DebugContext(ctx, "platform call",
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("duration", time.Since(start).String()),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observe(op, outcomeServer, start)
		return &entities.ServerError{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			observe(op, outcomeServer, start)
			return &entities.ServerError{
				Op:         op,
				StatusCode: resp.StatusCode,
				Message:    "malformed response: " + err.Error(),
			}
		}
	}

	observe(op, outcomeOK, start)
	return nil
}

// errorMessage достает текст ошибки из тела ответа платформы:
// {"message": "..."} либо обычный текст.
func errorMessage(status int, data []byte) string {
	var res struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &res); err == nil {
		if res.Message != "" {
			return res.Message
		}
		if res.Error != "" {
			return res.Error
		}
	}

	text := strings.TrimSpace(string(data))
	if text == "" || strings.HasPrefix(text, "{") || strings.HasPrefix(text, "<") {
		return http.StatusText(status)
	}
	return truncate(text, maxErrorMessage)
}

const maxErrorMessage = 512

// truncate режет по границе руны, не длиннее n байт.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
