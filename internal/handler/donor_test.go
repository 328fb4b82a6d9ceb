package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/food-donation-service/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDonorHandler_CreateDonation(t *testing.T) {
	expiry := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		user         *entities.User
		body         string
		mockBehavior func(svc *mocks.MockDonorService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			user: &donor,
			body: `{"foodType":"Soup","quantity":12.5,"unit":"liters","expiryTime":"2026-10-18T12:00:00Z","pickupLocation":"Main st"}`,
			mockBehavior: func(svc *mocks.MockDonorService) {
				svc.EXPECT().CreateDonation(mock.Anything, donor, mock.MatchedBy(func(in entities.NewDonation) bool {
					return in.Quantity.Equal(decimal.RequireFromString("12.5")) && in.Unit == entities.UnitLiters && in.ExpiryTime.Equal(expiry)
				})).Return(entities.Donation{ID: "5", FoodType: "Soup", Status: entities.DonationPending}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"PENDING"`,
		},
		{
			name: "validation",
			user: &donor,
			body: `{"foodType":"","quantity":1,"unit":"kg","expiryTime":"2026-10-18T12:00:00Z","pickupLocation":"x"}`,
			mockBehavior: func(svc *mocks.MockDonorService) {
				svc.EXPECT().CreateDonation(mock.Anything, donor, mock.Anything).
					Return(entities.Donation{}, entities.NewValidationError("foodType", "notblank")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"foodType":"notblank"`,
		},
		{
			name:       "wrong role",
			user:       &ngo,
			body:       `{}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no session",
			body:       `{}`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockDonorService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			status, body := serve(t, handler.NewDonorHandler(discard, svc, as(tc.user)), http.MethodPost, "/donor/donations", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestDonorHandler_ListDonations(t *testing.T) {
	svc := mocks.NewMockDonorService(t)
	svc.EXPECT().ListDonations(mock.Anything, donor).
		Return([]entities.Donation{{ID: "1", Quantity: decimal.NewFromInt(3)}}, nil).Once()

	status, body := serve(t, handler.NewDonorHandler(discard, svc, as(&donor)), http.MethodGet, "/donor/donations", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"id":"1"`)
	assert.Contains(t, body, `"quantity":"3"`)
}
