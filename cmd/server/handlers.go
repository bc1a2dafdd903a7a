package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"cartonquote/internal/offer"
	"cartonquote/internal/quote"
)

type quoteResponse struct {
	OK     bool               `json:"ok"`
	PDFURL string             `json:"pdf_url,omitempty"`
	LeadID string             `json:"lead_id,omitempty"`
	Errors []quote.FieldError `json:"errors,omitempty"`
	Error  string             `json:"error,omitempty"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var form quote.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, quoteResponse{Error: "неверный формат запроса"})
		return
	}

	result, fieldErrs, err := s.generator.Generate(r.Context(), form)
	if err != nil {
		if errors.Is(err, offer.ErrNoPrice) {
			writeJSON(w, http.StatusBadGateway, quoteResponse{Error: "не удалось определить цену"})
			return
		}
		s.log.Error("quote generation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, quoteResponse{Error: "не удалось сформировать предложение"})
		return
	}
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, quoteResponse{Errors: fieldErrs})
		return
	}

	resp := quoteResponse{OK: true, LeadID: result.Quote.LeadID}
	if len(result.PDF) > 0 {
		name := result.Quote.LeadID + ".pdf"
		if err := os.WriteFile(filepath.Join(s.pdfDir, name), result.PDF, 0o644); err != nil {
			s.log.Error("write pdf", zap.String("name", name), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, quoteResponse{Error: "не удалось сохранить документ"})
			return
		}
		resp.PDFURL = "/files/" + name
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
