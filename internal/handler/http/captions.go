package http

import (
	"encoding/json"
	"errors"
	"image"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-captioner/internal/logger"
	"github.com/MKhiriev/go-captioner/internal/service"
	"github.com/MKhiriev/go-captioner/internal/session"
	"github.com/MKhiriev/go-captioner/internal/utils"
	"github.com/MKhiriev/go-captioner/models"
)

// uploadField is the multipart form field carrying the uploaded image.
const uploadField = "image"

func (h *Handler) captionFromURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CaptionURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeMessage(w, msgNoImage, http.StatusBadRequest)
		return
	}

	img, err := h.services.ImageService.FromURL(r.Context(), req.URL)
	if err != nil {
		log.Err(err).Str("url", req.URL).Msg("image could not be loaded")
		writeError(w, err)
		return
	}

	h.generate(w, r, img)
}

func (h *Handler) captionFromUpload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.maxUploadSize > 0 {
		if r.ContentLength > h.maxUploadSize {
			log.Warn().Int64("content_length", r.ContentLength).Msg("upload too large")
			writeMessage(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			log.Err(err).Msg("upload too large")
			writeMessage(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		default:
			log.Err(err).Msg("no image in upload")
			writeMessage(w, msgNoImage, http.StatusBadRequest)
		}
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading upload failed")
		writeMessage(w, msgNoImage, http.StatusBadRequest)
		return
	}

	img, err := h.services.ImageService.FromUpload(r.Context(), header.Filename, data)
	if err != nil {
		log.Err(err).Str("filename", header.Filename).Msg("upload could not be decoded")
		writeError(w, err)
		return
	}

	h.generate(w, r, img)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, img image.Image) {
	sess, ok := h.requestSession(w, r)
	if !ok {
		return
	}

	active, err := h.services.CaptionFlowService.Generate(r.Context(), sess, img)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("caption generation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, active, http.StatusOK)
}

func (h *Handler) activeCaption(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requestSession(w, r)
	if !ok {
		return
	}

	active, err := h.services.CaptionFlowService.Active(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, active, http.StatusOK)
}

func (h *Handler) selectCandidate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sess, ok := h.requestSession(w, r)
	if !ok {
		return
	}

	var req models.SelectCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	active, err := h.services.CaptionFlowService.Select(r.Context(), sess, req.Index)
	if err != nil {
		log.Err(err).Int("index", req.Index).Msg("candidate not selected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, active, http.StatusOK)
}

func (h *Handler) editCaption(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sess, ok := h.requestSession(w, r)
	if !ok {
		return
	}

	var req models.EditCaptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	active, err := h.services.CaptionFlowService.Edit(r.Context(), sess, req.Text)
	if err != nil {
		log.Err(err).Msg("edit rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, active, http.StatusOK)
}

func (h *Handler) commitCaption(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sess, ok := h.requestSession(w, r)
	if !ok {
		return
	}

	var req models.CommitCaptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.CaptionFlowService.Commit(r.Context(), sess, req.Languages)
	if err != nil {
		log.Err(err).Msg("commit failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) captionHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requestSession(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, service.ErrInvalidInput)
			return
		}
		limit = parsed
	}

	captions, err := h.services.CaptionFlowService.History(r.Context(), sess, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("history not available")
		writeError(w, err)
		return
	}
	if captions == nil {
		captions = []models.EditedCaption{}
	}

	utils.WriteJSON(w, captions, http.StatusOK)
}

// requestSession returns the session bound by withSession. Without one the
// request is answered with 401.
func (h *Handler) requestSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeMessage(w, msgLoginRequired, http.StatusUnauthorized)
		return nil, false
	}
	return sess, true
}
