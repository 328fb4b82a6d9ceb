package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) SaveSubmission(ctx context.Context, s entities.OrderSubmission) error {
	query, args := r.qb.Insert("order_submissions").
		Columns(
			"id", "ngo_id", "order_id", "id_provisional", "qr_code", "qr_provisional",
			"delivery_location", "delivery_date", "delivery_time", "special_instructions",
			"status", "error", "created_at",
		).
		Values(
			s.ID, s.NGOID, nullString(s.OrderID), s.IDProvisional, nullString(s.QRCode), s.QRCodeProvisional,
			s.Delivery.DeliveryLocation, s.Delivery.DeliveryDate, s.Delivery.DeliveryTime, nullString(s.Delivery.SpecialInstructions),
			string(s.Status), nullString(s.Error), s.CreatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveSubmissionItems(ctx context.Context, submissionID string, items []entities.CartLine) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_submission_items").
		Columns("submission_id", "donation_id", "food_type", "unit", "pickup_location", "available", "requested_quantity").
		Suffix("ON CONFLICT (submission_id, donation_id) DO NOTHING")

	for _, it := range items {
		q = q.Values(
			submissionID,
			it.DonationID,
			it.FoodType,
			string(it.Unit),
			nullString(it.PickupLocation),
			it.Available,
			it.RequestedQuantity,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save submission items: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListSubmissions(ctx context.Context, ngoID string, limit int) ([]entities.OrderSubmission, error) {
	query, args := r.qb.Select(
		"id", "ngo_id", "order_id", "id_provisional", "qr_code", "qr_provisional",
		"delivery_location", "delivery_date", "delivery_time", "special_instructions",
		"status", "error", "created_at").
		From("order_submissions").
		Where(sq.Eq{"ngo_id": ngoID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var submissions []Submission
	if err := r.selectContext(ctx, &submissions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select submissions: %w", err)
	}

	if len(submissions) == 0 {
		return []entities.OrderSubmission{}, nil
	}

	ids := make([]string, len(submissions))
	for i, s := range submissions {
		ids[i] = s.ID
	}

	query, args = r.qb.Select(
		"submission_id", "donation_id", "food_type", "unit", "pickup_location", "available", "requested_quantity").
		From("order_submission_items").
		Where(sq.Eq{"submission_id": ids}).
		MustSql()

	var items []SubmissionItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select submission items: %w", err)
	}
	itemsMap := make(map[string][]SubmissionItem, len(ids))
	for _, it := range items {
		itemsMap[it.SubmissionID] = append(itemsMap[it.SubmissionID], it)
	}

	result := make([]entities.OrderSubmission, 0, len(submissions))
	for _, s := range submissions {
		result = append(result, SubmissionToEntity(s, itemsMap[s.ID]))
	}
	return result, nil
}

func (r *postgresRepo) SaveDonationTransition(ctx context.Context, t entities.DonationTransition) error {
	query, args := r.qb.Insert("donation_transitions").
		Columns("id", "donation_id", "from_status", "to_status", "actor_id", "actor_role", "created_at").
		Values(t.ID, t.DonationID, string(t.From), string(t.To), t.ActorID, string(t.ActorRole), t.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save donation transition: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
