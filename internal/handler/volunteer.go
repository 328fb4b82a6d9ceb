package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type VolunteerHandler struct {
	logger *slog.Logger
	svc    VolunteerService
	authMw Middleware
}

func NewVolunteerHandler(logger *slog.Logger, svc VolunteerService, authMw Middleware) *VolunteerHandler {
	return &VolunteerHandler{
		logger: logger.With(slog.String("handler", "volunteer")),
		svc:    svc,
		authMw: authMw,
	}
}

func (h *VolunteerHandler) Init(r chi.Router) {
	r.Route("/volunteer", func(r chi.Router) {
		r.Use(h.authMw, middleware.RequireRole(entities.RoleVolunteer))

		r.Get("/deliveries", h.AvailableDeliveries)
		r.Post("/deliveries/{id}/accept", h.AcceptDelivery)
		r.Post("/deliveries/{id}/complete", h.CompleteDelivery)

		r.Post("/donations/{id}/pickup", h.PickUp)
		r.Post("/donations/{id}/deliver", h.ConfirmDelivery)
	})
}

// AvailableDeliveries задачи доставки.
// @Summary      Задачи доставки
// @Description  Свободные задачи и задачи, принятые текущим волонтером
// @Tags         volunteer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Assignment
// @Router       /volunteer/deliveries [get]
func (h *VolunteerHandler) AvailableDeliveries(w http.ResponseWriter, r *http.Request) {
	v, ok := currentUser(w, r)
	if !ok {
		return
	}

	list, err := h.svc.AvailableDeliveries(r.Context(), v)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res := make([]Assignment, 0, len(list))
	for _, a := range list {
		res = append(res, AssignmentEntityToJSON(a))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// AcceptDelivery берет задачу доставки.
// @Summary      Принять доставку
// @Tags         volunteer
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID задачи"
// @Success      200  {object}  Assignment
// @Failure      404  {object}  utils.ErrorResponse "Задача не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Задача уже принята"
// @Router       /volunteer/deliveries/{id}/accept [post]
func (h *VolunteerHandler) AcceptDelivery(w http.ResponseWriter, r *http.Request) {
	v, ok := currentUser(w, r)
	if !ok {
		return
	}

	a, err := h.svc.AcceptDelivery(r.Context(), v, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, AssignmentEntityToJSON(a), http.StatusOK)
}

// CompleteDelivery завершает задачу доставки.
// @Summary      Завершить доставку
// @Tags         volunteer
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID задачи"
// @Success      200  {object}  Assignment
// @Failure      403  {object}  utils.ErrorResponse "Задача принята другим волонтером"
// @Failure      404  {object}  utils.ErrorResponse "Задача не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Router       /volunteer/deliveries/{id}/complete [post]
func (h *VolunteerHandler) CompleteDelivery(w http.ResponseWriter, r *http.Request) {
	v, ok := currentUser(w, r)
	if !ok {
		return
	}

	a, err := h.svc.CompleteDelivery(r.Context(), v, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, AssignmentEntityToJSON(a), http.StatusOK)
}

// PickUp отмечает, что еда забрана у донора.
// @Summary      Забрать пожертвование
// @Tags         volunteer
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID пожертвования"
// @Success      200  {object}  Donation
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Router       /volunteer/donations/{id}/pickup [post]
func (h *VolunteerHandler) PickUp(w http.ResponseWriter, r *http.Request) {
	v, ok := currentUser(w, r)
	if !ok {
		return
	}

	d, err := h.svc.PickUp(r.Context(), v, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, DonationEntityToJSON(d), http.StatusOK)
}

// ConfirmDelivery отмечает, что еда доставлена.
// @Summary      Подтвердить доставку пожертвования
// @Tags         volunteer
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID пожертвования"
// @Success      200  {object}  Donation
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Router       /volunteer/donations/{id}/deliver [post]
func (h *VolunteerHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	v, ok := currentUser(w, r)
	if !ok {
		return
	}

	d, err := h.svc.ConfirmDelivery(r.Context(), v, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, DonationEntityToJSON(d), http.StatusOK)
}
