package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gin-shareit/constants"
	"gin-shareit/middlewares"
	"gin-shareit/services"
)

// Response はサーバーの応答をそのまま保持する
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Call はサーバーへ転送する 1 回分のリクエスト
type Call struct {
	Method string
	Path   string
	UserID uint
	Query  url.Values
	Body   any
}

// BaseClient は全リソース共通の転送処理を持つ
type BaseClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     services.ITokenService
}

// NewBaseClient は tokens が nil ならサービストークンを付けない
func NewBaseClient(baseURL string, httpClient *http.Client, tokens services.ITokenService) *BaseClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &BaseClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
	}
}

func (c *BaseClient) Do(ctx context.Context, call Call) (*Response, error) {
	req, err := c.newRequest(ctx, call)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[ERROR] %s %s request_id=%s: %v",
			call.Method, call.Path, middlewares.RequestIDFromContext(ctx), err)
		return nil, services.ErrUnavailable(constants.ErrServerUnavailable)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Printf("[ERROR] reading response of %s %s: %v", call.Method, call.Path, err)
		return nil, services.ErrUnavailable(constants.ErrServerUnavailable)
	}
	return &Response{
		Status:      res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func (c *BaseClient) newRequest(ctx context.Context, call Call) (*http.Request, error) {
	target := c.baseURL + call.Path
	if len(call.Query) > 0 {
		target += "?" + call.Query.Encode()
	}

	var body io.Reader
	if call.Body != nil {
		buf, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body for %s %s: %w", call.Method, call.Path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if call.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if call.UserID != 0 {
		req.Header.Set(constants.HeaderSharerUserID, strconv.FormatUint(uint64(call.UserID), 10))
	}
	if id := middlewares.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(constants.HeaderRequestID, id)
	}
	if c.tokens != nil {
		token, err := c.tokens.Issue(call.UserID)
		if err != nil {
			return nil, fmt.Errorf("issue service token: %w", err)
		}
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	return req, nil
}

func pageQuery(from, size int) url.Values {
	q := url.Values{}
	q.Set("from", strconv.Itoa(from))
	q.Set("size", strconv.Itoa(size))
	return q
}

func idPath(prefix string, id uint) string {
	return prefix + "/" + strconv.FormatUint(uint64(id), 10)
}
