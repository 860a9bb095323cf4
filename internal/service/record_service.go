package service

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contas/internal/models"
	"contas/internal/storage"
)

// recordField names a required listMonth field along with the message
// returned when it is missing. Fields are checked in declaration order.
type recordField struct {
	name    string
	message string
}

var debtFields = []recordField{
	{"debt", "A dívida é obrigatório!"},
	{"category", "A categoria é obrigatório!"},
	{"value", "O valor é obrigatório!"},
	{"expirationDate", "A data de entrada é obrigatório!"},
}

var revenueFields = []recordField{
	{"typeRevenue", "O tipoReceita é obrigatório!"},
	{"value", "O valor é obrigatório!"},
	{"dateEntry", "A dataEntrada é obrigatório!"},
}

// RecordService handles submission, listing, update and deletion of the
// debts and revenues collections.
type RecordService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewRecordService creates a new record service over the given store.
func NewRecordService(store storage.Store, logger *slog.Logger) *RecordService {
	return &RecordService{store: store, logger: logger}
}

// SubmitDebt handles POST /auth/debts.
func (s *RecordService) SubmitDebt(w http.ResponseWriter, r *http.Request) {
	s.submit(w, r, models.KindDebt, debtFields, true)
}

// SubmitRevenue handles POST /auth/revenues.
func (s *RecordService) SubmitRevenue(w http.ResponseWriter, r *http.Request) {
	s.submit(w, r, models.KindRevenue, revenueFields, false)
}

// submit validates the kind's required listMonth fields in order, rejecting
// with 422 on the first missing one, then persists a record rebuilt from the
// declared fields only. Unknown payload fields are dropped.
func (s *RecordService) submit(w http.ResponseWriter, r *http.Request, kind models.RecordKind, fields []recordField, keepDate bool) {
	var payload models.FinancialRecord
	_ = json.NewDecoder(r.Body).Decode(&payload)

	listMonth := payload.User.Month.ListMonth
	for _, f := range fields {
		if listMonth.Field(f.name) == "" {
			writeMessage(w, http.StatusUnprocessableEntity, f.message)
			return
		}
	}

	entry := make(models.ListMonth, len(fields))
	for _, f := range fields {
		entry[f.name] = listMonth.Field(f.name)
	}

	rec := models.FinancialRecord{
		User: models.RecordUser{
			Title: payload.User.Title,
			Month: models.RecordMonth{
				Title:     payload.User.Month.Title,
				ListMonth: entry,
			},
		},
	}
	if keepDate {
		rec.User.Date = payload.User.Date
	}

	id, err := s.store.InsertRecord(r.Context(), kind, &rec)
	if err != nil {
		s.logger.Error("Failed to insert record", "kind", kind, "error", err)
		writeMessage(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	s.logger.Info("Record created", "kind", kind, "record_id", id)
	writeMessage(w, http.StatusCreated, "cadastro realizado com sucesso!")
}

// ListDebts handles GET /list/debts.
func (s *RecordService) ListDebts(w http.ResponseWriter, r *http.Request) {
	s.list(w, r, models.KindDebt, debtFields)
}

// ListRevenues handles GET /list/revenues.
func (s *RecordService) ListRevenues(w http.ResponseWriter, r *http.Request) {
	s.list(w, r, models.KindRevenue, revenueFields)
}

// list reshapes every stored record for the response and, when the "month"
// header is present, narrows the result by substring containment on the
// owner title ("user" header) and month title.
func (s *RecordService) list(w http.ResponseWriter, r *http.Request, kind models.RecordKind, fields []recordField) {
	records, err := s.store.FindRecords(r.Context(), kind)
	if err != nil {
		s.logger.Error("Failed to list records", "kind", kind, "error", err)
		writeMessage(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	result := reshapeRecords(records, fields)
	if month := r.Header.Get("month"); month != "" {
		result = filterRecords(result, r.Header.Get("user"), month)
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

// UpdateDebt handles PUT /update/debts/{id}. Responds with the bare updated
// document.
func (s *RecordService) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, models.KindDebt, false)
}

// UpdateRevenue handles PUT /update/revenues/{id}. Responds with the updated
// document wrapped under "user", unlike UpdateDebt; clients depend on both
// shapes.
func (s *RecordService) UpdateRevenue(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, models.KindRevenue, true)
}

func (s *RecordService) update(w http.ResponseWriter, r *http.Request, kind models.RecordKind, wrap bool) {
	id := chi.URLParam(r, "id")

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, "Corpo da requisição inválido!")
		return
	}

	rec, err := s.store.UpdateRecord(r.Context(), kind, id, body)
	if err != nil {
		s.logger.Error("Failed to update record", "kind", kind, "record_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}
	if rec == nil {
		writeMessage(w, http.StatusNotFound, "Registro não encontrado!")
		return
	}

	if wrap {
		writeJSON(w, http.StatusOK, map[string]any{"user": rec})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteDebt handles DELETE /delete/debt/{id}.
func (s *RecordService) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	s.delete(w, r, models.KindDebt, "Dívida excluída com sucesso!")
}

// DeleteRevenue handles DELETE /delete/revenue/{id}.
func (s *RecordService) DeleteRevenue(w http.ResponseWriter, r *http.Request) {
	s.delete(w, r, models.KindRevenue, "Receita excluída com sucesso!")
}

func (s *RecordService) delete(w http.ResponseWriter, r *http.Request, kind models.RecordKind, confirmation string) {
	id := chi.URLParam(r, "id")

	deleted, err := s.store.DeleteRecord(r.Context(), kind, id)
	if err != nil {
		s.logger.Error("Failed to delete record", "kind", kind, "record_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "Registro não encontrado!")
		return
	}

	s.logger.Info("Record deleted", "kind", kind, "record_id", id)
	writeMessage(w, http.StatusOK, confirmation)
}
