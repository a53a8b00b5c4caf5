package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"medication-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Dashboard
	r.Route("/medicines", func(mr chi.Router) {
		mr.Get("/", dashboardHandler(svc))
		mr.Post("/", addMedicineHandler(svc))

		// Botón "Track" de la tarjeta en la posición index
		mr.Post("/{index}/logs", trackMedicineHandler(svc))
	})

	// Export de lo persistido
	r.Get("/records", exportHandler(svc))

	// Historial (view-logs) y alta directa por nombre
	r.Route("/logs", func(lr chi.Router) {
		lr.Get("/", viewLogsHandler(svc))
		lr.Post("/", trackByNameHandler(svc))
	})
}

// addMedicineRequest es el formulario "Add New Medication".
type addMedicineRequest struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

type medicineResponse struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

// dashboardEntryResponse es una tarjeta del dashboard.
type dashboardEntryResponse struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Dosage string `json:"dosage"` // badge
	// Omitido si el medicamento no tiene logs.
	LastTaken string `json:"lastTaken,omitempty"`
}

// trackRequest es el diálogo de tracking; date/time vacíos => ahora.
type trackRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Symptoms string `json:"symptoms"`
}

type trackByNameRequest struct {
	MedicineName string `json:"medicineName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Symptoms     string `json:"symptoms"`
}

type logResponse struct {
	MedicineName  string `json:"medicineName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Symptoms      string `json:"symptoms"`
	FormattedDate string `json:"formattedDate"`
	FormattedTime string `json:"formattedTime"`
}

type viewLogsResponse struct {
	MedicineName string        `json:"medicineName"`
	Dosage       string        `json:"dosage,omitempty"`
	Logs         []logResponse `json:"logs"`
	Message      string        `json:"message,omitempty"`
}

// exportResponse son las dos keys persistidas del owner, tal cual.
type exportResponse struct {
	Owner     string        `json:"owner"`
	Email     string        `json:"email,omitempty"`
	Medicines []Medicine    `json:"medicines"`
	Logs      []MedicineLog `json:"logs"`
}

// exportHandler godoc
// @Summary Exportar registros
// @Description Devuelve las colecciones persistidas del owner (medicines y logs), incluidos logs huérfanos. email solo viene con token.
// @Tags records
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, owner explícito"
// @Success 200 {object} exportResponse
// @Failure 500 {string} string "internal error"
// @Router /records [get]
func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFrom(r.Context())

		c, err := svc.Snapshot(r.Context(), owner)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := exportResponse{Owner: owner, Medicines: c.Medicines, Logs: c.Logs}
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			resp.Email = claims.Email
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// dashboardHandler godoc
// @Summary Dashboard de medicamentos
// @Description Lista los medicamentos del owner en orden de alta, con el badge de dosis y la última toma formateada ("Jan 1, 8:00 AM"). `lastTaken` se omite si no hay logs.
// @Tags medicines
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, owner explícito"
// @Success 200 {array} dashboardEntryResponse
// @Failure 500 {string} string "internal error"
// @Router /medicines [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFrom(r.Context())

		entries, err := svc.Dashboard(r.Context(), owner)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]dashboardEntryResponse, 0, len(entries))
		for _, e := range entries {
			item := dashboardEntryResponse{
				Index:  e.Index,
				Name:   e.Medicine.Name,
				Dosage: e.Medicine.Dosage,
			}
			if e.LastTaken != nil {
				item.LastTaken = FormatDateTime(e.LastTaken.Date, e.LastTaken.Time)
			}
			out = append(out, item)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// addMedicineHandler godoc
// @Summary Agregar medicamento
// @Description Agrega un medicamento. name y dosage son obligatorios. No se controla duplicado por nombre.
// @Tags medicines
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, owner explícito"
// @Param payload body addMedicineRequest true "Nombre y dosis"
// @Success 201 {object} medicineResponse
// @Failure 400 {string} string "invalid json / name is required / dosage is required"
// @Failure 500 {string} string "internal error"
// @Router /medicines [post]
func addMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFrom(r.Context())

		var req addMedicineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.AddMedicine(r.Context(), owner, AddMedicineInput{
			Name:   req.Name,
			Dosage: req.Dosage,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, medicineResponse{Name: m.Name, Dosage: m.Dosage})
	}
}

// trackMedicineHandler godoc
// @Summary Registrar toma
// @Description Registra una toma del medicamento en la posición `index` del dashboard. date (YYYY-MM-DD) y time (HH:MM) vacíos se completan con la fecha/hora actual.
// @Tags medicines
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, owner explícito"
// @Param index path int true "Posición del medicamento en el dashboard"
// @Param payload body trackRequest true "Fecha, hora y síntomas"
// @Success 201 {object} logResponse
// @Failure 400 {string} string "invalid json / date must match YYYY-MM-DD / time must match HH:MM"
// @Failure 404 {string} string "medicine not found"
// @Failure 500 {string} string "internal error"
// @Router /medicines/{index}/logs [post]
func trackMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFrom(r.Context())

		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}

		var req trackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := TrackInput{Date: req.Date, Time: req.Time, Symptoms: req.Symptoms}
		if strings.TrimSpace(in.Date) == "" {
			in.Date = svc.CurrentDate()
		}
		if strings.TrimSpace(in.Time) == "" {
			in.Time = svc.CurrentTime()
		}

		l, err := svc.TrackMedicine(r.Context(), owner, index, in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toLogResponse(l))
	}
}

// trackByNameHandler godoc
// @Summary Registrar toma por nombre
// @Description Registra un log asociado por nombre. No se valida que exista un medicamento con ese nombre.
// @Tags logs
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, owner explícito"
// @Param payload body trackByNameRequest true "Log completo"
// @Success 201 {object} logResponse
// @Failure 400 {string} string "invalid json / validation error"
// @Failure 500 {string} string "internal error"
// @Router /logs [post]
func trackByNameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFrom(r.Context())

		var req trackByNameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		l, err := svc.Track(r.Context(), owner, req.MedicineName, TrackInput{
			Date:     req.Date,
			Time:     req.Time,
			Symptoms: req.Symptoms,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toLogResponse(l))
	}
}

// viewLogsHandler godoc
// @Summary Historial de un medicamento
// @Description Logs del medicamento (match exacto por nombre) en orden de registro, con fecha ("January 1, 2024") y hora ("8:00 AM") formateadas.
// @Tags logs
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, owner explícito"
// @Param medicine query string false "Nombre del medicamento"
// @Param dosage query string false "Dosis (solo para el encabezado)"
// @Success 200 {object} viewLogsResponse
// @Failure 500 {string} string "internal error"
// @Router /logs [get]
func viewLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFrom(r.Context())

		name := r.URL.Query().Get("medicine")
		resp := viewLogsResponse{
			MedicineName: name,
			Dosage:       r.URL.Query().Get("dosage"),
			Logs:         []logResponse{},
		}

		if name == "" {
			resp.Message = "No medication selected or no logs available."
			writeJSON(w, http.StatusOK, resp)
			return
		}

		items, err := svc.LogsFor(r.Context(), owner, name)
		if err != nil {
			writeError(w, err)
			return
		}

		for _, l := range items {
			resp.Logs = append(resp.Logs, toLogResponse(l))
		}
		if len(resp.Logs) == 0 {
			resp.Message = "You haven't tracked " + name + " yet."
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func toLogResponse(l MedicineLog) logResponse {
	return logResponse{
		MedicineName:  l.MedicineName,
		Date:          l.Date,
		Time:          l.Time,
		Symptoms:      l.Symptoms,
		FormattedDate: FormatDate(l.Date),
		FormattedTime: FormatTime(l.Time),
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medicine not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en handlers de distintos módulos a propósito:
// todavía no hay suficientes módulos como para extraer un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
