package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerContestantRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/contestants", handler.CreateContestant)
	mux.HandleFunc("GET /v1/contestants", handler.ListContestants)
	mux.HandleFunc("GET /v1/contestants/{contestantID}", handler.GetContestant)
	mux.HandleFunc("PATCH /v1/contestants/{contestantID}", handler.UpdateContestant)
	mux.HandleFunc("DELETE /v1/contestants/{contestantID}", handler.DeleteContestant)
	mux.HandleFunc("POST /v1/contestants/{contestantID}/wins", handler.IncrementContestantWins)
	mux.HandleFunc("POST /v1/contestants/{contestantID}/losses", handler.IncrementContestantLosses)
}
