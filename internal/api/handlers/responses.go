package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse тело ответа об ошибке. Reason заполняется для
// конфликтов и содержит машиночитаемую причину: отказ доступности
// (overlap, out_of_order, invalid_interval) или недопустимое
// состояние (illegal_transition, not_confirmed, outside_window,
// not_checked_in, cannot_update, cannot_cancel, not_out_of_order,
// resource_exists).
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// DecodeJSON декодирует тело запроса в dst. Декодер строгий:
// неизвестные поля не пропускаются, чтобы неоднозначные формы
// клиентских payload не протекали внутрь движка.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет payload в ответ со статусом status
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ответ об ошибке со статусом status
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondConflict пишет 409 с машиночитаемой причиной конфликта
func RespondConflict(w http.ResponseWriter, message, reason string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: message, Reason: reason})
}

// RespondBadRequest пишет 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondForbidden пишет 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondInternalError пишет 500 с обезличенным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
}
