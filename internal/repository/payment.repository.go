package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fundtrack/internal/db/models/postgres/public/model"
	"fundtrack/internal/db/models/postgres/public/table"
	"fundtrack/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PaymentRepository interface {
	Add(tx *sql.Tx, p domain.Payment) (*domain.Payment, error)
	// Get returns nil when no payment with this id was applied yet.
	Get(tx *sql.Tx, paymentID uuid.UUID) (*domain.Payment, error)
	ListByAllocation(tx *sql.Tx, allocationID uuid.UUID) ([]domain.Payment, error)
}

type paymentRepositoryHandler struct {
	Db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return paymentRepositoryHandler{Db: db}
}

func (h paymentRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	return db
}

func (h paymentRepositoryHandler) Add(tx *sql.Tx, p domain.Payment) (*domain.Payment, error) {
	query := table.Payment.
		INSERT(table.Payment.AllColumns).
		MODEL(paymentToModel(p)).
		RETURNING(table.Payment.AllColumns)

	out := model.Payment{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment %s: %w", p.PaymentID, err)
	}

	result := paymentFromModel(out)
	return &result, nil
}

func (h paymentRepositoryHandler) Get(tx *sql.Tx, paymentID uuid.UUID) (*domain.Payment, error) {
	query := table.Payment.
		SELECT(table.Payment.AllColumns).
		WHERE(table.Payment.PaymentID.EQ(postgres.UUID(paymentID)))

	out := model.Payment{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}

	result := paymentFromModel(out)
	return &result, nil
}

func (h paymentRepositoryHandler) ListByAllocation(tx *sql.Tx, allocationID uuid.UUID) ([]domain.Payment, error) {
	query := table.Payment.
		SELECT(table.Payment.AllColumns).
		WHERE(table.Payment.AllocationID.EQ(postgres.UUID(allocationID))).
		ORDER_BY(
			table.Payment.PaymentDate.ASC(),
			table.Payment.CreatedAt.ASC(),
		)

	models := []model.Payment{}
	err := query.Query(h.queryable(tx), &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for allocation %s: %w", allocationID, err)
	}

	out := []domain.Payment{}
	for _, m := range models {
		out = append(out, paymentFromModel(m))
	}
	return out, nil
}

func paymentToModel(p domain.Payment) model.Payment {
	return model.Payment{
		PaymentID:             p.PaymentID,
		CapitalCallID:         p.CapitalCallID,
		AllocationID:          p.AllocationID,
		Amount:                p.Amount.Decimal(),
		AppliedAmount:         p.AppliedAmount.Decimal(),
		PaymentDate:           p.PaymentDate.Time(),
		OverageDistributionID: p.OverageDistributionID,
		ActorID:               p.ActorID,
		CreatedAt:             p.CreatedAt,
	}
}

func paymentFromModel(m model.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:             m.PaymentID,
		CapitalCallID:         m.CapitalCallID,
		AllocationID:          m.AllocationID,
		Amount:                domain.NewMoney(m.Amount),
		AppliedAmount:         domain.NewMoney(m.AppliedAmount),
		PaymentDate:           domain.DateOf(m.PaymentDate),
		OverageDistributionID: m.OverageDistributionID,
		ActorID:               m.ActorID,
		CreatedAt:             m.CreatedAt,
	}
}
