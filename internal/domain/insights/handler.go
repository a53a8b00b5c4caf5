package insights

import (
	"context"
	"encoding/json"
	"net/http"

	"medication-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NotesSource da las notas concatenadas de un medicamento del owner.
// records.Service la implementa.
type NotesSource interface {
	Notes(ctx context.Context, owner, medicineName string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, notes NotesSource) {
	r.Route("/insights", func(ir chi.Router) {
		// Proxy: el cliente manda las notas
		ir.Post("/", insightsHandler(svc))

		// Pantalla de insights: las notas salen del store del owner
		ir.Post("/medicine", medicineInsightsHandler(svc, notes))
	})
}

// insightsRequest es el cuerpo del proxy.
type insightsRequest struct {
	Notes        string `json:"notes"`
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
}

type medicineInsightsRequest struct {
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
}

type insightsResponse struct {
	Insights []string `json:"insights"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// insightsHandler godoc
// @Summary Generar insights
// @Description Resume las notas de síntomas con un modelo de lenguaje externo (un solo request, sin reintentos). Sin notas devuelve `["No notes provided."]` sin llamar al proveedor. Cualquier falla del proveedor devuelve 500 con el error como texto.
// @Tags insights
// @Accept json
// @Produce json
// @Param payload body insightsRequest true "Notas (una por línea), nombre y dosis"
// @Success 200 {object} insightsResponse
// @Failure 400 {object} errorResponse "invalid json"
// @Failure 500 {object} errorResponse "error del proveedor"
// @Router /insights [post]
func insightsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req insightsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		out, err := svc.Generate(r.Context(), Request{
			Notes:        req.Notes,
			MedicineName: req.MedicineName,
			Dosage:       req.Dosage,
		})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, insightsResponse{Insights: out})
	}
}

// medicineInsightsHandler godoc
// @Summary Insights de un medicamento
// @Description Junta los síntomas de todos los logs del medicamento (match exacto por nombre) y pide insights. Si algo falla responde 200 con un único mensaje de disculpa, como la pantalla de insights.
// @Tags insights
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, owner explícito"
// @Param payload body medicineInsightsRequest true "Nombre y dosis"
// @Success 200 {object} insightsResponse
// @Failure 400 {object} errorResponse "invalid json"
// @Router /insights/medicine [post]
func medicineInsightsHandler(svc *Service, notes NotesSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFrom(r.Context())

		var req medicineInsightsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		text, err := notes.Notes(r.Context(), owner, req.MedicineName)
		if err != nil {
			writeJSON(w, http.StatusOK, insightsResponse{Insights: []string{ApologyMessage}})
			return
		}

		out, err := svc.Generate(r.Context(), Request{
			Notes:        text,
			MedicineName: req.MedicineName,
			Dosage:       req.Dosage,
		})
		if err != nil {
			writeJSON(w, http.StatusOK, insightsResponse{Insights: []string{ApologyMessage}})
			return
		}

		writeJSON(w, http.StatusOK, insightsResponse{Insights: out})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
