package gateway

import (
	"context"
	"net/http"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
)

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var res loginResponse
	req := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, "Login", http.MethodPost, "/auth/login", req, &res); err != nil {
		return LoginResult{}, err
	}

	if res.User.ID == "" {
		return LoginResult{}, &entities.ServerError{
			Op:         "Login",
			StatusCode: http.StatusOK,
			Message:    "response has no user",
		}
	}

	token := res.Token
	if token == "" {
		token = res.User.Token
	}

	return LoginResult{
		User: entities.User{
			ID:       string(res.User.ID),
			Name:     res.User.Name,
			Username: res.User.Username,
			Email:    res.User.Email,
			Role:     entities.Role(res.User.Role),
			Points:   res.User.Points,
		},
		Token: token,
	}, nil
}

func (c *Client) ImpactStats(ctx context.Context) (entities.ImpactStats, error) {
	var res impactDTO
	if err := c.do(ctx, "ImpactStats", http.MethodGet, "/stats/impact", nil, &res); err != nil {
		return entities.ImpactStats{}, err
	}
	return entities.ImpactStats{
		FoodSavedKg:          res.FoodSavedKg,
		MealsProvided:        res.MealsProvided,
		PeopleServed:         res.PeopleServed,
		SuccessfulDeliveries: res.SuccessfulDeliveries,
		CO2Saved:             res.CO2Saved,
	}, nil
}

func (c *Client) DashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	var res dashboardDTO
	if err := c.do(ctx, "DashboardStats", http.MethodGet, "/stats/dashboard", nil, &res); err != nil {
		return entities.DashboardStats{}, err
	}
	return res.toEntity(), nil
}
