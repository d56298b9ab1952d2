package stripeclient

import (
	"context"
	"fmt"
	"net/url"

	stripedomain "github.com/bmfischer3/stripe-studiobooking-analysis/infrastructure/integrator/stripe/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

// PageFetcher busca a página indicada pelo cursor; cursor vazio é a primeira página
type PageFetcher func(ctx context.Context, cursor string) (*stripedomain.Page, error)

// FetchAll percorre todas as páginas até has_more=false, preservando a ordem do upstream.
// O contexto é verificado antes de cada página.
func FetchAll[T any](ctx context.Context, resource string, fetch PageFetcher) ([]T, error) {
	var (
		records = make([]T, 0)
		cursor  string
		seen    = map[string]bool{}
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, &domain.QueryFailure{Resource: resource, Reason: "paginação cancelada", Err: err}
		}

		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}

		for i, raw := range page.Data {
			var item T
			if err := json.Unmarshal(raw, &item); err != nil {
				return nil, &domain.QueryFailure{
					Resource: resource,
					Reason:   fmt.Sprintf("erro ao decodificar item %d: %v", i, err),
					Err:      err,
				}
			}
			records = append(records, item)
		}

		if !page.HasMore {
			return records, nil
		}

		if page.NextPage == "" {
			return nil, &domain.QueryFailure{Resource: resource, Reason: "upstream sinalizou mais páginas sem cursor"}
		}
		if seen[page.NextPage] {
			return nil, &domain.QueryFailure{Resource: resource, Reason: fmt.Sprintf("cursor repetido %q", page.NextPage)}
		}

		seen[page.NextPage] = true
		cursor = page.NextPage
	}
}

// SearchFetcher adapta Client.SearchPage para FetchAll
func SearchFetcher(client Client, resource string, query Query) PageFetcher {
	return func(ctx context.Context, cursor string) (*stripedomain.Page, error) {
		return client.SearchPage(ctx, resource, query, cursor)
	}
}

// ListFetcher adapta Client.ListPage para FetchAll
func ListFetcher(client Client, resource string, params url.Values) PageFetcher {
	return func(ctx context.Context, cursor string) (*stripedomain.Page, error) {
		return client.ListPage(ctx, resource, params, cursor)
	}
}
