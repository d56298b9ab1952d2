package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/customer"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reconciling"
	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TenantServices agrupa os serviços de uma conta do Stripe
type TenantServices struct {
	Customers  customer.CustomerService
	Reconciler reconciling.Reconciler
	Generator  reporting.ReportGenerator
}

// Tenants resolve os serviços pelo parâmetro platform; vazio usa Default
type Tenants struct {
	Default  string
	Services map[string]TenantServices
}

func (t Tenants) resolve(r *http.Request) (TenantServices, error) {
	platform := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("platform")))
	if platform == "" {
		platform = t.Default
	}

	services, ok := t.Services[platform]
	if !ok {
		return TenantServices{}, &domain.NotFoundError{Resource: "platform", Key: platform}
	}
	return services, nil
}

// windowFromQuery lê start_date e end_date (YYYYMMDD) e exige start < end
func windowFromQuery(r *http.Request) (domain.TimeWindow, error) {
	query := r.URL.Query()

	window, err := domain.ResolveWindow(query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		return domain.TimeWindow{}, err
	}

	if err := window.Validate(); err != nil {
		return domain.TimeWindow{}, err
	}

	return window, nil
}

// emailsFromQuery aceita tanto ?emails=a,b quanto ?email=a&email=b
func emailsFromQuery(r *http.Request) []string {
	query := r.URL.Query()
	raw := append([]string{}, query["email"]...)
	raw = append(raw, query["emails"]...)

	emails := make([]string, 0, len(raw))
	for _, value := range raw {
		for _, email := range strings.Split(value, ",") {
			if email = strings.TrimSpace(email); email != "" {
				emails = append(emails, email)
			}
		}
	}
	return emails
}

func boolFromQuery(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
