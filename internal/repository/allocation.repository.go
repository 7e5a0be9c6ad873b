package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fundtrack/internal/db/models/postgres/public/model"
	"fundtrack/internal/db/models/postgres/public/table"
	"fundtrack/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationRepository interface {
	Add(tx *sql.Tx, a domain.Allocation) (*domain.Allocation, error)
	Get(tx *sql.Tx, id uuid.UUID) (*domain.Allocation, error)
	// GetForUpdate locks the allocation row until tx ends. Every mutation of
	// an allocation or its calls goes through this lock.
	GetForUpdate(tx *sql.Tx, id uuid.UUID) (*domain.Allocation, error)
	List(tx *sql.Tx, filter AllocationListFilter) ([]domain.Allocation, error)
	Update(tx *sql.Tx, a domain.Allocation) (*domain.Allocation, error)
	UpdateWeights(tx *sql.Tx, weights map[uuid.UUID]decimal.Decimal) error
}

type allocationRepositoryHandler struct {
	Db *sql.DB
}

func NewAllocationRepository(db *sql.DB) AllocationRepository {
	return allocationRepositoryHandler{Db: db}
}

func (h allocationRepositoryHandler) queryable(tx *sql.Tx) qrm.DB {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}
	return db
}

func (h allocationRepositoryHandler) Add(tx *sql.Tx, a domain.Allocation) (*domain.Allocation, error) {
	m := allocationToModel(a)
	query := table.Allocation.
		INSERT(table.Allocation.AllColumns).
		MODEL(m).
		RETURNING(table.Allocation.AllColumns)

	out := model.Allocation{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert allocation: %w", err)
	}

	result := allocationFromModel(out)
	return &result, nil
}

func (h allocationRepositoryHandler) Get(tx *sql.Tx, id uuid.UUID) (*domain.Allocation, error) {
	query := table.Allocation.
		SELECT(table.Allocation.AllColumns).
		WHERE(table.Allocation.AllocationID.EQ(postgres.UUID(id)))

	return h.getOne(tx, id, query)
}

func (h allocationRepositoryHandler) GetForUpdate(tx *sql.Tx, id uuid.UUID) (*domain.Allocation, error) {
	if tx == nil {
		return nil, fmt.Errorf("failed to lock allocation %s: no transaction", id)
	}
	query := table.Allocation.
		SELECT(table.Allocation.AllColumns).
		WHERE(table.Allocation.AllocationID.EQ(postgres.UUID(id))).
		FOR(postgres.UPDATE())

	return h.getOne(tx, id, query)
}

func (h allocationRepositoryHandler) getOne(tx *sql.Tx, id uuid.UUID, query postgres.SelectStatement) (*domain.Allocation, error) {
	out := model.Allocation{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.NewAllocationNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation %s: %w", id, err)
	}

	result := allocationFromModel(out)
	return &result, nil
}

type AllocationListFilter struct {
	FundIDs  []uuid.UUID
	Statuses []domain.AllocationStatus
	// ForUpdate locks every returned row, in allocation id order.
	ForUpdate bool
}

func (h allocationRepositoryHandler) List(tx *sql.Tx, filter AllocationListFilter) ([]domain.Allocation, error) {
	query := table.Allocation.
		SELECT(table.Allocation.AllColumns).
		ORDER_BY(table.Allocation.AllocationID.ASC())

	whereClauses := []postgres.BoolExpression{}
	if len(filter.FundIDs) > 0 {
		ids := []postgres.Expression{}
		for _, id := range filter.FundIDs {
			ids = append(ids, postgres.UUID(id))
		}
		whereClauses = append(whereClauses, table.Allocation.FundID.IN(ids...))
	}
	if len(filter.Statuses) > 0 {
		statuses := []postgres.Expression{}
		for _, s := range filter.Statuses {
			statuses = append(statuses, postgres.NewEnumValue(s.String()))
		}
		whereClauses = append(whereClauses, table.Allocation.Status.IN(statuses...))
	}
	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}
	if filter.ForUpdate {
		if tx == nil {
			return nil, fmt.Errorf("failed to lock allocations: no transaction")
		}
		query = query.FOR(postgres.UPDATE())
	}

	models := []model.Allocation{}
	err := query.Query(h.queryable(tx), &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	out := []domain.Allocation{}
	for _, m := range models {
		out = append(out, allocationFromModel(m))
	}
	return out, nil
}

func (h allocationRepositoryHandler) Update(tx *sql.Tx, a domain.Allocation) (*domain.Allocation, error) {
	if a.AllocationID == uuid.Nil {
		return nil, fmt.Errorf("failed to update allocation - id not provided in inputted model")
	}
	a.UpdatedAt = time.Now().UTC()
	m := allocationToModel(a)

	query := table.Allocation.
		UPDATE(
			table.Allocation.PaidAmount,
			table.Allocation.OutstandingAmount,
			table.Allocation.MarketValue,
			table.Allocation.PortfolioWeight,
			table.Allocation.Moic,
			table.Allocation.Irr,
			table.Allocation.IrrNeedsReview,
			table.Allocation.ScheduleType,
			table.Allocation.Status,
			table.Allocation.UpdatedAt,
		).
		MODEL(m).
		WHERE(table.Allocation.AllocationID.EQ(postgres.UUID(a.AllocationID))).
		RETURNING(table.Allocation.AllColumns)

	out := model.Allocation{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.NewAllocationNotFound(a.AllocationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update allocation %s: %w", a.AllocationID.String(), err)
	}

	result := allocationFromModel(out)
	return &result, nil
}

func (h allocationRepositoryHandler) UpdateWeights(tx *sql.Tx, weights map[uuid.UUID]decimal.Decimal) error {
	now := time.Now().UTC()
	for id, weight := range weights {
		query := table.Allocation.
			UPDATE(table.Allocation.PortfolioWeight, table.Allocation.UpdatedAt).
			SET(postgres.Float(weight.InexactFloat64()), postgres.TimestampzT(now)).
			WHERE(postgres.AND(
				table.Allocation.AllocationID.EQ(postgres.UUID(id)),
				table.Allocation.PortfolioWeight.NOT_EQ(postgres.Float(weight.InexactFloat64())),
			))

		_, err := query.Exec(h.queryable(tx))
		if err != nil {
			return fmt.Errorf("failed to update weight of allocation %s: %w", id, err)
		}
	}
	return nil
}

func allocationToModel(a domain.Allocation) model.Allocation {
	var scheduleType *model.ScheduleType
	if a.ScheduleType != nil {
		st := model.ScheduleType(*a.ScheduleType)
		scheduleType = &st
	}
	return model.Allocation{
		AllocationID:      a.AllocationID,
		FundID:            a.FundID,
		DealID:            a.DealID,
		SecurityType:      model.SecurityType(a.SecurityType),
		Currency:          a.Currency,
		CommittedAmount:   a.CommittedAmount.Decimal(),
		PaidAmount:        a.PaidAmount.Decimal(),
		OutstandingAmount: a.OutstandingAmount.Decimal(),
		MarketValue:       a.MarketValue.Decimal(),
		PortfolioWeight:   a.PortfolioWeight,
		Moic:              a.Moic,
		Irr:               a.Irr,
		IrrNeedsReview:    a.IrrNeedsReview,
		ScheduleType:      scheduleType,
		Status:            model.AllocationStatus(a.Status),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func allocationFromModel(m model.Allocation) domain.Allocation {
	var scheduleType *domain.ScheduleType
	if m.ScheduleType != nil {
		st := domain.ScheduleType(*m.ScheduleType)
		scheduleType = &st
	}
	return domain.Allocation{
		AllocationID:      m.AllocationID,
		FundID:            m.FundID,
		DealID:            m.DealID,
		SecurityType:      domain.SecurityType(m.SecurityType),
		Currency:          m.Currency,
		CommittedAmount:   domain.NewMoney(m.CommittedAmount),
		PaidAmount:        domain.NewMoney(m.PaidAmount),
		OutstandingAmount: domain.NewMoney(m.OutstandingAmount),
		MarketValue:       domain.NewMoney(m.MarketValue),
		PortfolioWeight:   m.PortfolioWeight,
		Moic:              m.Moic,
		Irr:               m.Irr,
		IrrNeedsReview:    m.IrrNeedsReview,
		ScheduleType:      scheduleType,
		Status:            domain.AllocationStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
