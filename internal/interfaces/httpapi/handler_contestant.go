package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/contestants/internal/domain/contestant"
	"github.com/riskibarqy/contestants/internal/usecase"
)

type createContestantRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Nickname    string `json:"nickname" validate:"omitempty,max=100"`
	CountryCode string `json:"country_code" validate:"omitempty,iso3166_1_alpha2"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url,max=2048"`
}

type updateContestantRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Nickname    *string `json:"nickname" validate:"omitempty,max=100"`
	CountryCode *string `json:"country_code" validate:"omitempty,iso3166_1_alpha2"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url,max=2048"`
}

type contestantDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Nickname    string    `json:"nickname,omitempty"`
	CountryCode string    `json:"country_code,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Wins        int64     `json:"wins"`
	Losses      int64     `json:"losses"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (h *Handler) CreateContestant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateContestant")
	defer span.End()

	var req createContestantRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.contestantService.Create(ctx, usecase.CreateContestantInput{
		Name:        req.Name,
		Nickname:    req.Nickname,
		CountryCode: req.CountryCode,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create contestant failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, contestantToDTO(ctx, item))
}

func (h *Handler) ListContestants(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListContestants")
	defer span.End()

	items, err := h.contestantService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list contestants failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]contestantDTO, 0, len(items))
	for _, item := range items {
		out = append(out, contestantToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetContestant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContestant")
	defer span.End()

	contestantID := strings.TrimSpace(r.PathValue("contestantID"))
	item, err := h.contestantService.Get(ctx, contestantID)
	if err != nil {
		h.logger.WarnContext(ctx, "get contestant failed", "contestant_id", contestantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, contestantToDTO(ctx, item))
}

func (h *Handler) UpdateContestant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateContestant")
	defer span.End()

	contestantID := strings.TrimSpace(r.PathValue("contestantID"))

	var req updateContestantRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.contestantService.Update(ctx, contestantID, contestant.Patch{
		Name:        req.Name,
		Nickname:    req.Nickname,
		CountryCode: req.CountryCode,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update contestant failed", "contestant_id", contestantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, contestantToDTO(ctx, item))
}

func (h *Handler) DeleteContestant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteContestant")
	defer span.End()

	contestantID := strings.TrimSpace(r.PathValue("contestantID"))
	if err := h.contestantService.Delete(ctx, contestantID); err != nil {
		h.logger.WarnContext(ctx, "delete contestant failed", "contestant_id", contestantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) IncrementContestantWins(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IncrementContestantWins")
	defer span.End()

	contestantID := strings.TrimSpace(r.PathValue("contestantID"))
	item, err := h.contestantService.IncrementWins(ctx, contestantID)
	if err != nil {
		h.logger.WarnContext(ctx, "increment contestant wins failed", "contestant_id", contestantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, contestantToDTO(ctx, item))
}

func (h *Handler) IncrementContestantLosses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IncrementContestantLosses")
	defer span.End()

	contestantID := strings.TrimSpace(r.PathValue("contestantID"))
	item, err := h.contestantService.IncrementLosses(ctx, contestantID)
	if err != nil {
		h.logger.WarnContext(ctx, "increment contestant losses failed", "contestant_id", contestantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, contestantToDTO(ctx, item))
}

func contestantToDTO(ctx context.Context, v contestant.Contestant) contestantDTO {
	_, span := startSpan(ctx, "httpapi.contestantToDTO")
	defer span.End()

	return contestantDTO{
		ID:          v.ID,
		Name:        v.Name,
		Nickname:    v.Nickname,
		CountryCode: v.CountryCode,
		AvatarURL:   v.AvatarURL,
		Wins:        v.Wins,
		Losses:      v.Losses,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
