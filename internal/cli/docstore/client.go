// Package docstore — HTTP-клиент документного хранилища, реализующий crud.Store.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"UserCRUD/internal/cli/api"
	"UserCRUD/internal/crud"
)

var (
	// ErrNotFound — документа с таким id нет.
	ErrNotFound = errors.New("document not found")
	// ErrUnauthorized — токен отсутствует или не принят сервером.
	ErrUnauthorized = errors.New("unauthorized: run login first")
)

// StatusError — неожиданный ответ сервера.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server status %d: %s", e.Code, e.Body)
}

// Client обращается к /api/collections/{collection}/documents.
type Client struct {
	serverURL string
	token     string
	timeout   time.Duration
}

var _ crud.Store = (*Client)(nil)

// New создаёт клиента. timeout ограничивает каждый запрос; 0 — без ограничения.
func New(serverURL, token string, timeout time.Duration) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		token:     token,
		timeout:   timeout,
	}
}

type documentDTO struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type listResponse struct {
	Documents []documentDTO `json:"documents"`
}

type fieldsRequest struct {
	Fields map[string]any `json:"fields"`
}

type createResponse struct {
	ID string `json:"id"`
}

func (c *Client) endpoint(collection, id string) string {
	u := c.serverURL + "/api/collections/" + url.PathEscape(collection) + "/documents"
	if id != "" {
		u += "/" + url.PathEscape(id)
	}
	return u
}

// do выполняет запрос и проверяет код ответа; out == nil — тело не разбирается.
func (c *Client) do(ctx context.Context, method, target string, payload any, want int, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, body, err := api.DoJSON(ctx, method, target, payload, c.token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case want:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	if out == nil {
		return nil
	}
	if err := decode(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// ListAll возвращает все документы коллекции в порядке сервера.
func (c *Client) ListAll(ctx context.Context, collection string) ([]crud.Document, error) {
	var lr listResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint(collection, ""), nil, http.StatusOK, &lr); err != nil {
		return nil, err
	}
	docs := make([]crud.Document, 0, len(lr.Documents))
	for _, d := range lr.Documents {
		docs = append(docs, crud.Document{ID: d.ID, Fields: d.Fields})
	}
	return docs, nil
}

// Create создаёт документ и возвращает его id.
func (c *Client) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	var cr createResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint(collection, ""), fieldsRequest{Fields: fields}, http.StatusCreated, &cr); err != nil {
		return "", err
	}
	if cr.ID == "" {
		return "", errors.New("server returned empty id")
	}
	return cr.ID, nil
}

// Update полностью заменяет поля документа.
func (c *Client) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if id == "" {
		return ErrNotFound
	}
	return c.do(ctx, http.MethodPut, c.endpoint(collection, id), fieldsRequest{Fields: fields}, http.StatusOK, nil)
}

// Delete удаляет документ. Удаление несуществующего id сервер считает успехом.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	if id == "" {
		return ErrNotFound
	}
	return c.do(ctx, http.MethodDelete, c.endpoint(collection, id), nil, http.StatusNoContent, nil)
}
