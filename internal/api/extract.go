package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"talentdesk/internal/errors"
)

// extractRequest carries a resume either as a base64 document plus MIME type
// or as a data URI, matching what the dashboard upload form sends.
type extractRequest struct {
	Document string `json:"document"`
	MimeType string `json:"mimeType"`
	DataURI  string `json:"dataUri"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleExtract")
	defer span.End()
	defer r.Body.Close()

	if s.extractor == nil {
		s.respondError(w, errors.Unavailable("resume extraction is not configured", nil),
			"Resume extraction is not available.")
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.InvalidInput("invalid JSON body", err),
			"An unexpected error occurred while processing the CV.")
		return
	}

	document, mime, err := decodeDocument(req)
	if err != nil {
		s.respondError(w, err, "An unexpected error occurred while processing the CV.")
		return
	}

	extracted, err := s.extractor.Extract(ctx, document, mime)
	if err != nil {
		s.respondError(w, err, "An unexpected error occurred while processing the CV.")
		return
	}
	s.respond(w, http.StatusOK, extracted)
}

func decodeDocument(req extractRequest) ([]byte, string, error) {
	if req.DataURI != "" {
		// data:<mime>;base64,<payload>
		rest, ok := strings.CutPrefix(req.DataURI, "data:")
		if !ok {
			return nil, "", errors.Validation(map[string][]string{
				"dataUri": {"CV data must be a valid data URI"},
			})
		}
		meta, payload, ok := strings.Cut(rest, ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			return nil, "", errors.Validation(map[string][]string{
				"dataUri": {"CV data must be a valid data URI"},
			})
		}
		document, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", errors.InvalidInput("decoding data URI payload", err)
		}
		return document, strings.TrimSuffix(meta, ";base64"), nil
	}

	if req.Document == "" {
		return nil, "", errors.Validation(map[string][]string{
			"document": {"Document is required"},
		})
	}
	document, err := base64.StdEncoding.DecodeString(req.Document)
	if err != nil {
		return nil, "", errors.InvalidInput("decoding document payload", err)
	}
	mime := req.MimeType
	if mime == "" {
		mime = "text/plain"
	}
	return document, mime, nil
}
