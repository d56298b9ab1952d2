package reporting

import (
	"sort"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

// Registry guarda um gerador por plataforma
type Registry struct {
	generators map[string]ReportGenerator
	fallback   string
}

func NewRegistry(fallback string, generators map[string]ReportGenerator) *Registry {
	return &Registry{generators: generators, fallback: fallback}
}

// Get resolve o gerador pela chave da plataforma; vazio usa a plataforma padrão
func (r *Registry) Get(platform string) (ReportGenerator, error) {
	if platform == "" {
		platform = r.fallback
	}

	g, ok := r.generators[platform]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "platform", Key: platform}
	}
	return g, nil
}

func (r *Registry) Platforms() []string {
	keys := make([]string, 0, len(r.generators))
	for k := range r.generators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
