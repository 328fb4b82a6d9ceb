package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/middleware"
	"github.com/SergeyBogomolovv/food-donation-service/internal/validation"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Middleware аутентификация, которую приложение передает обработчикам закрытых маршрутов.
type Middleware = func(next http.Handler) http.Handler

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
	authMw   Middleware
}

func NewAuthHandler(logger *slog.Logger, svc AuthService, authMw Middleware) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: validation.New(),
		svc:      svc,
		authMw:   authMw,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.With(h.authMw).Post("/auth/logout", h.Logout)
	r.With(h.authMw).Get("/auth/me", h.Me)
}

// Login вход на платформу.
// @Summary      Вход
// @Description  Проверяет учетные данные на платформе и открывает сессию
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Учетные данные"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Неверные учетные данные"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка платформы"
// @Failure      503  {object}  utils.ErrorResponse "Платформа недоступна"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		logins.WithLabelValues("error").Inc()
		writeError(w, r, h.logger, err)
		return
	}
	logins.WithLabelValues("ok").Inc()

	utils.WriteJSON(w, LoginResponse{Token: session.ID, User: UserEntityToJSON(session.User)}, http.StatusOK)
}

// Logout закрывает сессию.
// @Summary      Выход
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Нет сессии"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Logout(r.Context(), middleware.SessionIDFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// Me текущий пользователь.
// @Summary      Текущий пользователь
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  User
// @Failure      401  {object}  utils.ErrorResponse "Нет сессии"
// @Router       /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	utils.WriteJSON(w, UserEntityToJSON(u), http.StatusOK)
}

type StatsHandler struct {
	logger *slog.Logger
	svc    StatsService
}

func NewStatsHandler(logger *slog.Logger, svc StatsService) *StatsHandler {
	return &StatsHandler{
		logger: logger.With(slog.String("handler", "stats")),
		svc:    svc,
	}
}

func (h *StatsHandler) Init(r chi.Router) {
	r.Get("/stats/impact", h.Impact)
	r.Get("/stats/dashboard", h.Dashboard)
}

// Impact статистика платформы.
// @Summary      Статистика
// @Description  Сколько еды спасено и доставлено через платформу
// @Tags         stats
// @Produce      json
// @Success      200  {object}  ImpactStats
// @Failure      502  {object}  utils.ErrorResponse "Ошибка платформы"
// @Failure      503  {object}  utils.ErrorResponse "Платформа недоступна"
// @Router       /stats/impact [get]
func (h *StatsHandler) Impact(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Impact(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, ImpactEntityToJSON(stats), http.StatusOK)
}

// Dashboard сводка для главной страницы.
// @Summary      Сводка платформы
// @Description  Количество участников, пожертвований и заявок на платформе
// @Tags         stats
// @Produce      json
// @Success      200  {object}  DashboardStats
// @Failure      502  {object}  utils.ErrorResponse "Ошибка платформы"
// @Failure      503  {object}  utils.ErrorResponse "Платформа недоступна"
// @Router       /stats/dashboard [get]
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	utils.WriteJSON(w, DashboardEntityToJSON(stats), http.StatusOK)
}

// currentUser пользователь, положенный в контекст middleware.Auth.
func currentUser(w http.ResponseWriter, r *http.Request) (entities.User, bool) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
	}
	return u, ok
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
