package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fundtrack/internal/db/models/postgres/public/enum"
	"fundtrack/internal/db/models/postgres/public/model"
	"fundtrack/internal/db/models/postgres/public/table"
	"fundtrack/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type CapitalCallRepository interface {
	AddMany(tx *sql.Tx, calls []domain.CapitalCall) error
	Get(tx *sql.Tx, id uuid.UUID) (*domain.CapitalCall, error)
	ListByAllocation(tx *sql.Tx, allocationID uuid.UUID, filter CapitalCallListFilter) ([]domain.CapitalCall, error)
	// ListSweepCandidates returns active calls that AdvanceCalls must look
	// at on asOf: scheduled calls whose call date has arrived and called or
	// partial calls already past due.
	ListSweepCandidates(tx *sql.Tx, asOf domain.Date) ([]domain.CapitalCall, error)
	Update(tx *sql.Tx, c domain.CapitalCall) error
}

type capitalCallRepositoryHandler struct {
	Db *sql.DB
}

func NewCapitalCallRepository(db *sql.DB) CapitalCallRepository {
	return capitalCallRepositoryHandler{Db: db}
}

type CapitalCallListFilter struct {
	IncludeSuperseded bool
}

func (h capitalCallRepositoryHandler) queryable(tx *sql.Tx) qrm.DB {
	var db qrm.DB = h.Db
	if tx != nil {
		db = tx
	}
	return db
}

func (h capitalCallRepositoryHandler) AddMany(tx *sql.Tx, calls []domain.CapitalCall) error {
	if len(calls) == 0 {
		return nil
	}
	models := []model.CapitalCall{}
	for _, c := range calls {
		models = append(models, capitalCallToModel(c))
	}

	query := table.CapitalCall.
		INSERT(table.CapitalCall.AllColumns).
		MODELS(models)

	_, err := query.Exec(h.queryable(tx))
	if err != nil {
		return fmt.Errorf("failed to insert %d capital calls: %w", len(calls), err)
	}
	return nil
}

func (h capitalCallRepositoryHandler) Get(tx *sql.Tx, id uuid.UUID) (*domain.CapitalCall, error) {
	query := table.CapitalCall.
		SELECT(table.CapitalCall.AllColumns).
		WHERE(table.CapitalCall.CapitalCallID.EQ(postgres.UUID(id)))

	out := model.CapitalCall{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.NewCallNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get capital call %s: %w", id, err)
	}

	result := capitalCallFromModel(out)
	return &result, nil
}

func (h capitalCallRepositoryHandler) ListByAllocation(tx *sql.Tx, allocationID uuid.UUID, filter CapitalCallListFilter) ([]domain.CapitalCall, error) {
	whereClause := table.CapitalCall.AllocationID.EQ(postgres.UUID(allocationID))
	if !filter.IncludeSuperseded {
		whereClause = whereClause.AND(table.CapitalCall.SupersededAt.IS_NULL())
	}

	query := table.CapitalCall.
		SELECT(table.CapitalCall.AllColumns).
		WHERE(whereClause).
		ORDER_BY(
			table.CapitalCall.Sequence.ASC(),
			table.CapitalCall.CreatedAt.ASC(),
		)

	return h.list(tx, query)
}

func (h capitalCallRepositoryHandler) ListSweepCandidates(tx *sql.Tx, asOf domain.Date) ([]domain.CapitalCall, error) {
	day := postgres.DateT(asOf.Time())
	query := table.CapitalCall.
		SELECT(table.CapitalCall.AllColumns).
		WHERE(postgres.AND(
			table.CapitalCall.SupersededAt.IS_NULL(),
			postgres.OR(
				postgres.AND(
					table.CapitalCall.Status.EQ(enum.CapitalCallStatus.Scheduled),
					table.CapitalCall.CallDate.LT_EQ(day),
				),
				postgres.AND(
					table.CapitalCall.Status.IN(enum.CapitalCallStatus.Called, enum.CapitalCallStatus.Partial),
					table.CapitalCall.DueDate.LT(day),
				),
			),
		)).
		ORDER_BY(
			table.CapitalCall.AllocationID.ASC(),
			table.CapitalCall.Sequence.ASC(),
		)

	return h.list(tx, query)
}

func (h capitalCallRepositoryHandler) list(tx *sql.Tx, query postgres.SelectStatement) ([]domain.CapitalCall, error) {
	models := []model.CapitalCall{}
	err := query.Query(h.queryable(tx), &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list capital calls: %w", err)
	}

	out := []domain.CapitalCall{}
	for _, m := range models {
		out = append(out, capitalCallFromModel(m))
	}
	return out, nil
}

func (h capitalCallRepositoryHandler) Update(tx *sql.Tx, c domain.CapitalCall) error {
	if c.CapitalCallID == uuid.Nil {
		return fmt.Errorf("failed to update capital call - id not provided in inputted model")
	}
	c.UpdatedAt = time.Now().UTC()
	m := capitalCallToModel(c)

	query := table.CapitalCall.
		UPDATE(
			table.CapitalCall.AmountPaid,
			table.CapitalCall.Status,
			table.CapitalCall.SupersededAt,
			table.CapitalCall.UpdatedAt,
		).
		MODEL(m).
		WHERE(table.CapitalCall.CapitalCallID.EQ(postgres.UUID(c.CapitalCallID)))

	res, err := query.Exec(h.queryable(tx))
	if err != nil {
		return fmt.Errorf("failed to update capital call %s: %w", c.CapitalCallID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NewCallNotFound(c.CapitalCallID)
	}
	return nil
}

func capitalCallToModel(c domain.CapitalCall) model.CapitalCall {
	return model.CapitalCall{
		CapitalCallID: c.CapitalCallID,
		AllocationID:  c.AllocationID,
		Sequence:      int32(c.Sequence),
		CallAmount:    c.CallAmount.Decimal(),
		AmountPaid:    c.AmountPaid.Decimal(),
		CallDate:      c.CallDate.Time(),
		DueDate:       c.DueDate.Time(),
		Status:        model.CapitalCallStatus(c.Status),
		SupersededAt:  c.SupersededAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func capitalCallFromModel(m model.CapitalCall) domain.CapitalCall {
	return domain.CapitalCall{
		CapitalCallID: m.CapitalCallID,
		AllocationID:  m.AllocationID,
		Sequence:      int(m.Sequence),
		CallAmount:    domain.NewMoney(m.CallAmount),
		AmountPaid:    domain.NewMoney(m.AmountPaid),
		CallDate:      domain.DateOf(m.CallDate),
		DueDate:       domain.DateOf(m.DueDate),
		Status:        domain.CapitalCallStatus(m.Status),
		SupersededAt:  m.SupersededAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
