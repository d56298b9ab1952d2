package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	stripedomain "github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/stripeclient"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/config"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultPageSize = 100

type record struct {
	raw    []byte
	fields map[string]any
}

// Client serve arquivos capturados previamente com o mesmo contrato de páginas do Stripe
type Client struct {
	dir      string
	pageSize int

	mu      sync.Mutex
	records map[string][]record
}

// NewClient lê os arquivos da plataforma em SNAPSHOT_DIR/<plataforma>
func NewClient(cfg *config.Config, platform config.Platform) stripeclient.Client {
	return New(PlatformDir(cfg.DataSource.SnapshotDir, platform), cfg.DataSource.SnapshotPage)
}

func New(dir string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Client{
		dir:      dir,
		pageSize: pageSize,
		records:  map[string][]record{},
	}
}

// PlatformDir separa os snapshots de cada conta do Stripe
func PlatformDir(base string, platform config.Platform) string {
	return filepath.Join(base, platform.Key)
}

func FilePath(dir, resource string) string {
	return filepath.Join(dir, resource+".json")
}

func (c *Client) SearchPage(ctx context.Context, resource string, query stripeclient.Query, cursor string) (*stripedomain.Page, error) {
	if !stripedomain.SearchableResources[resource] {
		return nil, &domain.QueryFailure{Resource: resource, Reason: "recurso não suporta busca"}
	}

	filter, err := parsePredicate(query)
	if err != nil {
		return nil, &domain.QueryFailure{Resource: resource, Reason: err.Error(), StatusCode: 400, Err: err}
	}

	matched, err := c.filter(ctx, resource, filter)
	if err != nil {
		return nil, err
	}

	offset := 0
	if cursor != "" {
		offset, err = strconv.Atoi(cursor)
		if err != nil || offset < 0 || offset > len(matched) {
			return nil, &domain.QueryFailure{Resource: resource, Reason: fmt.Sprintf("cursor inválido %q", cursor), StatusCode: 400}
		}
	}

	page := c.slice(matched, offset)
	if page.HasMore {
		page.NextPage = strconv.Itoa(offset + len(page.Data))
	}
	page.Object = "search_result"

	return page, nil
}

func (c *Client) ListPage(ctx context.Context, resource string, params url.Values, cursor string) (*stripedomain.Page, error) {
	if !stripedomain.ListableResources[resource] {
		return nil, &domain.QueryFailure{Resource: resource, Reason: "recurso não suporta listagem"}
	}

	filter, err := parseListParams(params)
	if err != nil {
		return nil, &domain.QueryFailure{Resource: resource, Reason: err.Error(), StatusCode: 400, Err: err}
	}

	matched, err := c.filter(ctx, resource, filter)
	if err != nil {
		return nil, err
	}

	offset := 0
	if cursor != "" {
		offset = -1
		for i, r := range matched {
			if id, _ := r.fields["id"].(string); id == cursor {
				offset = i + 1
				break
			}
		}
		if offset < 0 {
			return nil, &domain.QueryFailure{Resource: resource, Reason: fmt.Sprintf("starting_after desconhecido %q", cursor), StatusCode: 400}
		}
	}

	page := c.slice(matched, offset)
	if page.HasMore {
		page.NextPage, _ = matched[offset+len(page.Data)-1].fields["id"].(string)
	}
	page.Object = "list"

	return page, nil
}

func (c *Client) slice(matched []record, offset int) *stripedomain.Page {
	end := offset + c.pageSize
	if end > len(matched) {
		end = len(matched)
	}

	page := &stripedomain.Page{}
	for _, r := range matched[offset:end] {
		page.Data = append(page.Data, r.raw)
	}
	page.HasMore = end < len(matched)

	return page
}

func (c *Client) filter(ctx context.Context, resource string, f predicate) ([]record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.QueryFailure{Resource: resource, Reason: "requisição cancelada", Err: err}
	}

	all, err := c.load(resource)
	if err != nil {
		return nil, err
	}

	matched := make([]record, 0, len(all))
	for _, r := range all {
		if f.matches(r.fields) {
			matched = append(matched, r)
		}
	}

	return matched, nil
}

// load lê o arquivo do recurso uma única vez; arquivo ausente equivale a nenhum registro
func (c *Client) load(resource string) ([]record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if records, ok := c.records[resource]; ok {
		return records, nil
	}

	path := FilePath(c.dir, resource)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logrus.WithFields(logrus.Fields{
			"resource": resource,
			"path":     path,
		}).Warn("snapshot: arquivo não encontrado, considerando vazio")
		c.records[resource] = []record{}
		return c.records[resource], nil
	}
	if err != nil {
		return nil, &domain.QueryFailure{Resource: resource, Reason: "erro ao ler snapshot", Err: err}
	}

	var items []jsoniter.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &domain.QueryFailure{Resource: resource, Reason: fmt.Sprintf("snapshot inválido em %s", path), Err: err}
	}

	records := make([]record, 0, len(items))
	for i, item := range items {
		fields := map[string]any{}
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, &domain.QueryFailure{Resource: resource, Reason: fmt.Sprintf("item %d inválido em %s", i, path), Err: err}
		}
		records = append(records, record{raw: []byte(item), fields: fields})
	}

	c.records[resource] = records
	return records, nil
}

// predicate avalia o subconjunto da linguagem de busca produzido por stripeclient.Query
type predicate struct {
	createdGT *int64
	createdLT *int64
	equals    map[string]string
}

func parsePredicate(q stripeclient.Query) (predicate, error) {
	p := predicate{equals: map[string]string{}}

	for _, clause := range q.Clauses() {
		clause = strings.TrimSpace(clause)

		switch {
		case strings.HasPrefix(clause, "created<"):
			v, err := strconv.ParseInt(strings.TrimPrefix(clause, "created<"), 10, 64)
			if err != nil {
				return p, fmt.Errorf("cláusula inválida %q", clause)
			}
			p.createdLT = &v
		case strings.HasPrefix(clause, "created>"):
			v, err := strconv.ParseInt(strings.TrimPrefix(clause, "created>"), 10, 64)
			if err != nil {
				return p, fmt.Errorf("cláusula inválida %q", clause)
			}
			p.createdGT = &v
		default:
			field, value, ok := strings.Cut(clause, ":")
			if !ok || len(value) < 2 || !strings.HasPrefix(value, "'") || !strings.HasSuffix(value, "'") {
				return p, fmt.Errorf("cláusula não suportada %q", clause)
			}
			p.equals[field] = value[1 : len(value)-1]
		}
	}

	return p, nil
}

func parseListParams(params url.Values) (predicate, error) {
	p := predicate{equals: map[string]string{}}

	bound := func(key string, adjust int64) (*int64, error) {
		raw := params.Get(key)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parâmetro inválido %s=%q", key, raw)
		}
		v += adjust
		return &v, nil
	}

	var err error
	if p.createdGT, err = bound("created[gt]", 0); err != nil {
		return p, err
	}
	if p.createdGT == nil {
		if p.createdGT, err = bound("created[gte]", -1); err != nil {
			return p, err
		}
	}
	if p.createdLT, err = bound("created[lt]", 0); err != nil {
		return p, err
	}
	if p.createdLT == nil {
		if p.createdLT, err = bound("created[lte]", 1); err != nil {
			return p, err
		}
	}

	if status := params.Get("status"); status != "" && status != "all" {
		p.equals["status"] = status
	}

	return p, nil
}

func (p predicate) matches(fields map[string]any) bool {
	if p.createdGT != nil || p.createdLT != nil {
		created, ok := fields["created"].(float64)
		if !ok {
			return false
		}
		if p.createdGT != nil && int64(created) <= *p.createdGT {
			return false
		}
		if p.createdLT != nil && int64(created) >= *p.createdLT {
			return false
		}
	}

	for field, expected := range p.equals {
		if fieldValue(fields[field]) != expected {
			return false
		}
	}

	return true
}

// fieldValue compara campos expansíveis pelo id
func fieldValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		id, _ := val["id"].(string)
		return id
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
