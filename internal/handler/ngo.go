package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-donation-service/internal/validation"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type NGOHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      NGOService
	authMw   Middleware
}

func NewNGOHandler(logger *slog.Logger, svc NGOService, authMw Middleware) *NGOHandler {
	return &NGOHandler{
		logger:   logger.With(slog.String("handler", "ngo")),
		validate: validation.New(),
		svc:      svc,
		authMw:   authMw,
	}
}

func (h *NGOHandler) Init(r chi.Router) {
	r.Route("/ngo", func(r chi.Router) {
		r.Use(h.authMw, middleware.RequireRole(entities.RoleNGO))

		r.Get("/donations", h.Browse)
		r.Post("/donations/{id}/accept", h.AcceptDonation)

		r.Get("/cart", h.Cart)
		r.Delete("/cart", h.ClearCart)
		r.Post("/cart/items", h.AddToCart)
		r.Put("/cart/items/{donation_id}", h.SetQuantity)
		r.Delete("/cart/items/{donation_id}", h.RemoveFromCart)

		r.Post("/orders", h.SubmitOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/submissions", h.ListSubmissions)
	})
}

// Browse доступные пожертвования.
// @Summary      Доступные пожертвования
// @Description  Только PENDING с неистекшим сроком годности
// @Tags         ngo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Donation
// @Failure      502  {object}  utils.ErrorResponse "Ошибка платформы"
// @Failure      503  {object}  utils.ErrorResponse "Платформа недоступна"
// @Router       /ngo/donations [get]
func (h *NGOHandler) Browse(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Browse(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, DonationsEntityToJSON(list), http.StatusOK)
}

// AcceptDonation закрепляет пожертвование за NGO.
// @Summary      Принять пожертвование
// @Tags         ngo
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID пожертвования"
// @Success      200  {object}  Donation
// @Failure      404  {object}  utils.ErrorResponse "Пожертвование не найдено"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Router       /ngo/donations/{id}/accept [post]
func (h *NGOHandler) AcceptDonation(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	d, err := h.svc.AcceptDonation(r.Context(), ngo, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, DonationEntityToJSON(d), http.StatusOK)
}

// Cart корзина текущей NGO.
// @Summary      Корзина
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Router       /ngo/cart [get]
func (h *NGOHandler) Cart(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Cart(r.Context(), ngo)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(c), http.StatusOK)
}

// ClearCart очищает корзину.
// @Summary      Очистить корзину
// @Tags         cart
// @Security     BearerAuth
// @Success      204
// @Router       /ngo/cart [delete]
func (h *NGOHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	h.svc.ClearCart(r.Context(), ngo)
	w.WriteHeader(http.StatusNoContent)
}

// AddToCart добавляет единицу пожертвования в корзину.
// @Summary      Добавить в корзину
// @Description  Повторное добавление увеличивает количество на 1, но не больше доступного
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      AddCartItemRequest  true  "Пожертвование"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Пожертвование недоступно"
// @Router       /ngo/cart/items [post]
func (h *NGOHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	c, err := h.svc.AddToCart(r.Context(), ngo, req.DonationID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(c), http.StatusOK)
}

// SetQuantity меняет количество в строке корзины.
// @Summary      Изменить количество
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        donation_id  path      string              true  "ID пожертвования"
// @Param        request      body      SetQuantityRequest  true  "Количество"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /ngo/cart/items/{donation_id} [put]
func (h *NGOHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req SetQuantityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	c, err := h.svc.SetQuantity(r.Context(), ngo, chi.URLParam(r, "donation_id"), *req.Quantity)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(c), http.StatusOK)
}

// RemoveFromCart удаляет строку корзины.
// @Summary      Удалить из корзины
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        donation_id  path      string  true  "ID пожертвования"
// @Success      200  {object}  Cart
// @Router       /ngo/cart/items/{donation_id} [delete]
func (h *NGOHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	c, err := h.svc.RemoveFromCart(r.Context(), ngo, chi.URLParam(r, "donation_id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(c), http.StatusOK)
}

// SubmitOrder оформляет заказ из корзины.
// @Summary      Оформить заказ
// @Description  При успехе отправленные строки удаляются из корзины, при ошибке корзина не меняется
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      DeliveryDetails  true  "Детали доставки"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Пустая корзина или детали доставки"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка платформы"
// @Failure      503  {object}  utils.ErrorResponse "Платформа недоступна"
// @Router       /ngo/orders [post]
func (h *NGOHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req DeliveryDetails
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.SubmitOrder(r.Context(), ngo, DeliveryJSONToEntity(req))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	ordersSubmitted.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders заказы текущей NGO.
// @Summary      Мои заказы
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Order
// @Router       /ngo/orders [get]
func (h *NGOHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	orders, err := h.svc.ListOrders(r.Context(), ngo)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// ListSubmissions журнал отправок заказов.
// @Summary      Журнал отправок
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Сколько записей вернуть (до 100)"
// @Success      200  {array}   Submission
// @Failure      400  {object}  utils.ErrorResponse "Неверный limit"
// @Router       /ngo/orders/submissions [get]
func (h *NGOHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	ngo, ok := currentUser(w, r)
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		utils.WriteError(w, "invalid limit", http.StatusBadRequest)
		return
	}

	list, err := h.svc.ListSubmissions(r.Context(), ngo, limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res := make([]Submission, 0, len(list))
	for _, s := range list {
		res = append(res, SubmissionEntityToJSON(s))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
