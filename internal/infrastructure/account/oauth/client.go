package oauth

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const (
	tokenPath    = "/oauth/token"
	userInfoPath = "/oauth/userinfo"

	maxResponseBodySize = 1 << 20
)

var errProviderTransient = crerr.New("login provider transient failure")

type ClientConfig struct {
	BaseURL        string
	AppID          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client exchanges an authorization code from the login provider for the
// identity of the signed-in user.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	appID   string
	timeout time.Duration
	logger  *logging.Logger
	breaker *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                "fantasy-cricket",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodySize,
		},
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		appID:   strings.TrimSpace(cfg.AppID),
		timeout: timeout,
		logger:  logger,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

// Exchange trades the callback code for an access token and reads the user
// profile behind it.
func (c *Client) Exchange(ctx context.Context, code, redirectURI string) (usecase.LoginInput, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return usecase.LoginInput{}, fmt.Errorf("%w: authorization code is required", usecase.ErrInvalidInput)
	}
	if c.baseURL == "" {
		return usecase.LoginInput{}, fmt.Errorf("%w: login provider is not configured", usecase.ErrDependencyUnavailable)
	}

	var identity usecase.LoginInput
	err := c.breaker.Do(func() error {
		var err error
		identity, err = c.exchange(ctx, code, redirectURI)
		return err
	}, isCircuitFailure)
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "login provider circuit breaker rejected request", "state", c.breaker.State().String())
			return usecase.LoginInput{}, fmt.Errorf("%w: login provider: %w", usecase.ErrDependencyUnavailable, err)
		}
		if isCircuitFailure(err) {
			c.logger.WarnContext(ctx, "login provider call failed", "error", err)
			return usecase.LoginInput{}, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return usecase.LoginInput{}, err
	}
	return identity, nil
}

func (c *Client) exchange(ctx context.Context, code, redirectURI string) (usecase.LoginInput, error) {
	var token tokenResponse
	err := c.doJSON(ctx, http.MethodPost, tokenPath, "", tokenRequest{
		ClientID:    c.appID,
		GrantType:   "authorization_code",
		Code:        code,
		RedirectURI: redirectURI,
	}, &token)
	if err != nil {
		return usecase.LoginInput{}, crerr.Wrap(err, "exchange authorization code")
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return usecase.LoginInput{}, fmt.Errorf("%w: empty access token", usecase.ErrUnauthorized)
	}

	var info userInfoResponse
	if err := c.doJSON(ctx, http.MethodGet, userInfoPath, token.AccessToken, nil, &info); err != nil {
		return usecase.LoginInput{}, crerr.Wrap(err, "get user info")
	}
	if strings.TrimSpace(info.OpenID) == "" {
		return usecase.LoginInput{}, crerr.New("invalid user info response: openId is empty")
	}

	return usecase.LoginInput{
		OpenID:      info.OpenID,
		Name:        info.Name,
		Email:       info.Email,
		LoginMethod: firstNonEmpty(info.LoginMethod, info.Platform),
	}, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, bearer string, payload, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	if payload != nil {
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)

		if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
			return crerr.Wrap(err, "encode request body")
		}
		req.Header.SetContentType("application/json")
		req.SetBody(buf.B)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("%w: %s %s: %v", errProviderTransient, method, path, err)
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden || status == http.StatusBadRequest:
		return fmt.Errorf("%w: login provider rejected %s with status %d", usecase.ErrUnauthorized, path, status)
	case isRetryableStatus(status):
		return fmt.Errorf("%w: %s status=%d", errProviderTransient, path, status)
	case status/100 != 2:
		return crerr.Newf("login provider %s failed with status %d", path, status)
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return crerr.Wrapf(err, "decode %s response", path)
	}
	return nil
}

func isCircuitFailure(err error) bool {
	return stderrors.Is(err, errProviderTransient)
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

type tokenRequest struct {
	ClientID    string `json:"clientId"`
	GrantType   string `json:"grantType"`
	Code        string `json:"code"`
	RedirectURI string `json:"redirectUri,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type userInfoResponse struct {
	OpenID      string `json:"openId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginMethod string `json:"loginMethod"`
	Platform    string `json:"platform"`
}
