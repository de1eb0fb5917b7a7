package api

import (
	"net/http"

	"github.com/JaimeStill/tribunal/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(mux, domain.Policies.Handler().Routes())
	routes.Register(mux, domain.Reports.Handler().Routes())
}
