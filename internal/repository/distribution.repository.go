package repository

import (
	"database/sql"
	"fmt"

	"fundtrack/internal/db/models/postgres/public/model"
	"fundtrack/internal/db/models/postgres/public/table"
	"fundtrack/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type DistributionRepository interface {
	Add(tx *sql.Tx, d domain.Distribution) (*domain.Distribution, error)
	ListByAllocation(tx *sql.Tx, allocationID uuid.UUID) ([]domain.Distribution, error)
}

type distributionRepositoryHandler struct {
	Db *sql.DB
}

func NewDistributionRepository(db *sql.DB) DistributionRepository {
	return distributionRepositoryHandler{Db: db}
}

func (h distributionRepositoryHandler) Add(tx *sql.Tx, d domain.Distribution) (*domain.Distribution, error) {
	query := table.Distribution.
		INSERT(table.Distribution.AllColumns).
		MODEL(model.Distribution{
			DistributionID:   d.DistributionID,
			AllocationID:     d.AllocationID,
			Amount:           d.Amount.Decimal(),
			DistributionDate: d.DistributionDate.Time(),
			DistributionType: model.DistributionType(d.Type),
			Description:      d.Description,
			CreatedAt:        d.CreatedAt,
		}).
		RETURNING(table.Distribution.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Distribution{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert distribution: %w", err)
	}

	result := distributionFromModel(out)
	return &result, nil
}

func (h distributionRepositoryHandler) ListByAllocation(tx *sql.Tx, allocationID uuid.UUID) ([]domain.Distribution, error) {
	query := table.Distribution.
		SELECT(table.Distribution.AllColumns).
		WHERE(table.Distribution.AllocationID.EQ(postgres.UUID(allocationID))).
		ORDER_BY(table.Distribution.DistributionDate.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	models := []model.Distribution{}
	err := query.Query(db, &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributions for allocation %s: %w", allocationID, err)
	}

	out := []domain.Distribution{}
	for _, m := range models {
		out = append(out, distributionFromModel(m))
	}
	return out, nil
}

func distributionFromModel(m model.Distribution) domain.Distribution {
	return domain.Distribution{
		DistributionID:   m.DistributionID,
		AllocationID:     m.AllocationID,
		Amount:           domain.NewMoney(m.Amount),
		DistributionDate: domain.DateOf(m.DistributionDate),
		Type:             domain.DistributionType(m.DistributionType),
		Description:      m.Description,
		CreatedAt:        m.CreatedAt,
	}
}
