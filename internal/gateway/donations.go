package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
)

func (c *Client) CreateDonation(ctx context.Context, d entities.NewDonation) (entities.Donation, error) {
	var res donationDTO
	if err := c.do(ctx, "CreateDonation", http.MethodPost, "/donations", newCreateDonationRequest(d), &res); err != nil {
		return entities.Donation{}, err
	}
	return res.toEntity(), nil
}

func (c *Client) ListAvailableDonations(ctx context.Context) ([]entities.Donation, error) {
	var res []donationDTO
	if err := c.do(ctx, "ListAvailableDonations", http.MethodGet, "/donations/available", nil, &res); err != nil {
		return nil, err
	}
	return donationsToEntities(res), nil
}

func (c *Client) ListDonorDonations(ctx context.Context, donorID string) ([]entities.Donation, error) {
	var res []donationDTO
	path := "/donations/donor/" + url.PathEscape(donorID)
	if err := c.do(ctx, "ListDonorDonations", http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return donationsToEntities(res), nil
}

func (c *Client) GetDonation(ctx context.Context, id string) (entities.Donation, error) {
	var res donationDTO
	if err := c.do(ctx, "GetDonation", http.MethodGet, "/donations/"+url.PathEscape(id), nil, &res); err != nil {
		return entities.Donation{}, err
	}
	return res.toEntity(), nil
}

func (c *Client) AssignDonationToNGO(ctx context.Context, donationID, ngoID string) (entities.Donation, error) {
	var res donationDTO
	path := "/donations/" + url.PathEscape(donationID) + "/assign-ngo/" + url.PathEscape(ngoID)
	if err := c.do(ctx, "AssignDonationToNGO", http.MethodPut, path, nil, &res); err != nil {
		return entities.Donation{}, err
	}
	return res.toEntity(), nil
}

func (c *Client) MarkDonationPickedUp(ctx context.Context, donationID string) (entities.Donation, error) {
	var res donationDTO
	path := "/donations/" + url.PathEscape(donationID) + "/pickup"
	if err := c.do(ctx, "MarkDonationPickedUp", http.MethodPut, path, nil, &res); err != nil {
		return entities.Donation{}, err
	}
	return res.toEntity(), nil
}

func (c *Client) MarkDonationDelivered(ctx context.Context, donationID string) (entities.Donation, error) {
	var res donationDTO
	path := "/donations/" + url.PathEscape(donationID) + "/deliver"
	if err := c.do(ctx, "MarkDonationDelivered", http.MethodPut, path, nil, &res); err != nil {
		return entities.Donation{}, err
	}
	return res.toEntity(), nil
}
