package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/utils"
)

// writeError переводит ошибку сервиса в HTTP-ответ.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := statusCode(err)
	errorResponses.WithLabelValues(strconv.Itoa(code)).Inc()

	switch code {
	case http.StatusBadRequest:
		utils.WriteValidationError(w, err)
		return
	case http.StatusBadGateway:
		logger.WarnContext(r.Context(), "platform error", slog.Any("error", err))
	case http.StatusServiceUnavailable:
		logger.WarnContext(r.Context(), "platform unavailable", slog.Any("error", err))
	case http.StatusInternalServerError:
		logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err), slog.String("path", r.URL.Path))
	}

	utils.WriteError(w, errorMessage(err, code), code)
}

func statusCode(err error) int {
	var (
		validationErr *entities.ValidationError
		illegalErr    *entities.IllegalTransitionError
		serverErr     *entities.ServerError
		networkErr    *entities.NetworkError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &illegalErr), errors.Is(err, entities.ErrDonationUnavailable):
		return http.StatusConflict
	case errors.Is(err, entities.ErrAssignmentNotFound), errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrForbidden):
		return http.StatusForbidden
	case errors.As(err, &serverErr):
		return http.StatusBadGateway
	case errors.As(err, &networkErr):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func errorMessage(err error, code int) string {
	var illegalErr *entities.IllegalTransitionError
	var serverErr *entities.ServerError

	switch {
	case errors.As(err, &illegalErr):
		return illegalErr.Error()
	case errors.Is(err, entities.ErrDonationUnavailable):
		return "donation is no longer available"
	case errors.Is(err, entities.ErrAssignmentNotFound):
		return "delivery not found"
	case code == http.StatusBadGateway && errors.As(err, &serverErr):
		return serverErr.Message
	case code == http.StatusServiceUnavailable:
		return "platform unavailable"
	case code == http.StatusInternalServerError:
		return "internal server error"
	}
	return http.StatusText(code)
}
