package stripeclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"

	stripedomain "github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxPageLimit = 100

// Client expõe as chamadas de página do Stripe. Cada chamada busca exatamente uma página.
type Client interface {
	SearchPage(ctx context.Context, resource string, query Query, cursor string) (*stripedomain.Page, error)
	ListPage(ctx context.Context, resource string, params url.Values, cursor string) (*stripedomain.Page, error)
}

type StripeClient struct {
	backend    stripe.Backend
	apiVersion string
	secretKey  string
	pageLimit  int64
}

// NewClient cria um cliente para o tenant informado
func NewClient(cfg *config.Config, platform config.Platform) Client {
	return NewClientWithHTTP(cfg, platform, &http.Client{
		Timeout: cfg.StripeTimeout(),
	})
}

// NewClientWithHTTP monta o backend do stripe-go sem retentativas; a política de retry fica com quem chama
func NewClientWithHTTP(cfg *config.Config, platform config.Platform, httpClient *http.Client) *StripeClient {
	backendConfig := &stripe.BackendConfig{
		HTTPClient:        withStatusRecorder(httpClient),
		LeveledLogger:     logrus.StandardLogger(),
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.Stripe.BaseURL != "" {
		backendConfig.URL = stripe.String(cfg.Stripe.BaseURL)
	}

	pageLimit := int64(cfg.Stripe.PageLimit)
	if pageLimit <= 0 || pageLimit > maxPageLimit {
		pageLimit = maxPageLimit
	}

	return &StripeClient{
		backend:    stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		apiVersion: cfg.Stripe.APIVersion,
		secretKey:  platform.SecretKey,
		pageLimit:  pageLimit,
	}
}

func (c *StripeClient) SearchPage(ctx context.Context, resource string, query Query, cursor string) (*stripedomain.Page, error) {
	if !stripedomain.SearchableResources[resource] {
		return nil, &domain.QueryFailure{Resource: resource, Reason: "recurso não suporta busca"}
	}

	params := c.newParams()
	params.AddExtra("query", query.String())
	if cursor != "" {
		params.AddExtra("page", cursor)
	}

	return c.call(ctx, resource, "/v1/"+resource+"/search", params)
}

func (c *StripeClient) ListPage(ctx context.Context, resource string, filters url.Values, cursor string) (*stripedomain.Page, error) {
	if !stripedomain.ListableResources[resource] {
		return nil, &domain.QueryFailure{Resource: resource, Reason: "recurso não suporta listagem"}
	}

	params := c.newParams()
	for key, values := range filters {
		for _, v := range values {
			params.AddExtra(key, v)
		}
	}
	if cursor != "" {
		params.AddExtra("starting_after", cursor)
	}

	page, err := c.call(ctx, resource, "/v1/"+resource, params)
	if err != nil {
		return nil, err
	}

	// Listagens paginam pelo id do último item
	page.NextPage = ""
	if page.HasMore && len(page.Data) > 0 {
		var last stripedomain.Object
		if err := json.Unmarshal(page.Data[len(page.Data)-1], &last); err != nil {
			return nil, &domain.QueryFailure{Resource: resource, Reason: "erro ao ler id do último item", Err: err}
		}
		page.NextPage = last.ID
	}

	return page, nil
}

func (c *StripeClient) newParams() *stripe.Params {
	params := &stripe.Params{}
	params.AddExtra("limit", strconv.FormatInt(c.pageLimit, 10))

	// Sem versão configurada vale a do stripe-go
	if c.apiVersion != "" {
		params.Headers = http.Header{"Stripe-Version": []string{c.apiVersion}}
	}

	return params
}

func (c *StripeClient) call(ctx context.Context, resource, path string, params *stripe.Params) (*stripedomain.Page, error) {
	status := new(int)
	params.Context = context.WithValue(ctx, statusKey{}, status)

	start := time.Now()
	var page stripedomain.Page
	err := c.backend.Call(http.MethodGet, path, c.secretKey, params, &page)

	logrus.WithFields(logrus.Fields{
		"resource":    resource,
		"status_code": *status,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Página recebida do Stripe")

	if err != nil {
		failure := newQueryFailure(ctx, resource, *status, err)
		metrics.UpstreamFailuresTotal.WithLabelValues(resource, strconv.FormatBool(failure.Retryable)).Inc()
		return nil, failure
	}

	metrics.UpstreamPagesTotal.WithLabelValues(resource).Inc()
	return &page, nil
}

// newQueryFailure traduz o erro do stripe-go. 429 e 5xx podem ser repetidos.
func newQueryFailure(ctx context.Context, resource string, status int, err error) *domain.QueryFailure {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &domain.QueryFailure{Resource: resource, Reason: "requisição cancelada", Err: ctxErr}
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &domain.QueryFailure{
			Resource:   resource,
			Reason:     stripeErr.Msg,
			StatusCode: stripeErr.HTTPStatusCode,
			Retryable:  retryableStatus(stripeErr.HTTPStatusCode) || stripeErr.Code == stripe.ErrorCodeRateLimit,
			Err:        err,
		}
	}

	switch {
	case status == 0:
		// Falha de rede, nenhuma resposta chegou
		return &domain.QueryFailure{
			Resource:  resource,
			Reason:    "erro ao executar a requisição: " + err.Error(),
			Retryable: true,
			Err:       errors.Wrap(err, "stripe request"),
		}
	case status >= http.StatusBadRequest:
		// Corpo de erro fora do envelope do Stripe
		return &domain.QueryFailure{
			Resource:   resource,
			Reason:     http.StatusText(status),
			StatusCode: status,
			Retryable:  retryableStatus(status),
			Err:        err,
		}
	default:
		return &domain.QueryFailure{
			Resource:   resource,
			Reason:     "erro ao decodificar a resposta",
			StatusCode: status,
			Err:        errors.Wrap(err, "decode stripe page"),
		}
	}
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

type statusKey struct{}

// statusRecorder guarda o status HTTP no ponteiro levado pelo contexto da requisição,
// já que o stripe-go descarta a resposta quando o corpo de erro não é JSON
type statusRecorder struct {
	base http.RoundTripper
}

func (s statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := s.base.RoundTrip(req)
	if err == nil {
		if status, ok := req.Context().Value(statusKey{}).(*int); ok {
			*status = resp.StatusCode
		}
	}
	return resp, err
}

func withStatusRecorder(httpClient *http.Client) *http.Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	wrapped := *httpClient
	wrapped.Transport = statusRecorder{base: base}
	return &wrapped
}
