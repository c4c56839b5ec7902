package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"patient-booking-api/internal/delivery/dto"
	"patient-booking-api/internal/usecase"
	"patient-booking-api/pkg/response"
	"patient-booking-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.IssueToken(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidClientCredentials) {
			response.Unauthorized(w, "Invalid client credentials")
			return
		}
		response.InternalServerError(w, "Failed to issue token")
		return
	}

	response.Success(w, http.StatusOK, "Token issued successfully", tokens)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRefreshToken) {
			response.Unauthorized(w, "Invalid refresh token")
			return
		}
		response.InternalServerError(w, "Failed to refresh token")
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}
