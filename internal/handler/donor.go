package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type DonorHandler struct {
	logger *slog.Logger
	svc    DonorService
	authMw Middleware
}

func NewDonorHandler(logger *slog.Logger, svc DonorService, authMw Middleware) *DonorHandler {
	return &DonorHandler{
		logger: logger.With(slog.String("handler", "donor")),
		svc:    svc,
		authMw: authMw,
	}
}

func (h *DonorHandler) Init(r chi.Router) {
	r.Route("/donor", func(r chi.Router) {
		r.Use(h.authMw, middleware.RequireRole(entities.RoleDonor))
		r.Post("/donations", h.CreateDonation)
		r.Get("/donations", h.ListDonations)
	})
}

// CreateDonation публикует новое пожертвование.
// @Summary      Создать пожертвование
// @Tags         donor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateDonationRequest  true  "Пожертвование"
// @Success      201  {object}  Donation
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет сессии"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка платформы"
// @Router       /donor/donations [post]
func (h *DonorHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	donor, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreateDonationRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	d, err := h.svc.CreateDonation(r.Context(), donor, CreateDonationJSONToEntity(req))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, DonationEntityToJSON(d), http.StatusCreated)
}

// ListDonations пожертвования текущего донора.
// @Summary      Мои пожертвования
// @Tags         donor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Donation
// @Failure      401  {object}  utils.ErrorResponse "Нет сессии"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Router       /donor/donations [get]
func (h *DonorHandler) ListDonations(w http.ResponseWriter, r *http.Request) {
	donor, ok := currentUser(w, r)
	if !ok {
		return
	}

	list, err := h.svc.ListDonations(r.Context(), donor)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, DonationsEntityToJSON(list), http.StatusOK)
}
