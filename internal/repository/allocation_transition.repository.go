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

// AllocationTransitionRepository stores the audit trail of lifecycle moves.
type AllocationTransitionRepository interface {
	Add(tx *sql.Tx, records []domain.TransitionRecord) error
	List(tx *sql.Tx, allocationID uuid.UUID) ([]domain.TransitionRecord, error)
}

type allocationTransitionRepositoryHandler struct {
	Db *sql.DB
}

func NewAllocationTransitionRepository(db *sql.DB) AllocationTransitionRepository {
	return allocationTransitionRepositoryHandler{Db: db}
}

func (h allocationTransitionRepositoryHandler) Add(tx *sql.Tx, records []domain.TransitionRecord) error {
	if len(records) == 0 {
		return nil
	}
	models := []model.AllocationTransition{}
	for _, r := range records {
		models = append(models, model.AllocationTransition{
			AllocationTransitionID: uuid.New(),
			AllocationID:           r.AllocationID,
			FromStatus:             model.AllocationStatus(r.From),
			ToStatus:               model.AllocationStatus(r.To),
			Event:                  r.Event.String(),
			ActorID:                r.ActorID,
			CreatedAt:              r.CreatedAt,
		})
	}

	query := table.AllocationTransition.
		INSERT(table.AllocationTransition.AllColumns).
		MODELS(models)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert allocation transitions: %w", err)
	}
	return nil
}

func (h allocationTransitionRepositoryHandler) List(tx *sql.Tx, allocationID uuid.UUID) ([]domain.TransitionRecord, error) {
	query := table.AllocationTransition.
		SELECT(table.AllocationTransition.AllColumns).
		WHERE(table.AllocationTransition.AllocationID.EQ(postgres.UUID(allocationID))).
		ORDER_BY(table.AllocationTransition.CreatedAt.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	models := []model.AllocationTransition{}
	err := query.Query(db, &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list transitions for allocation %s: %w", allocationID, err)
	}

	out := []domain.TransitionRecord{}
	for _, m := range models {
		out = append(out, domain.TransitionRecord{
			AllocationID: m.AllocationID,
			From:         domain.AllocationStatus(m.FromStatus),
			To:           domain.AllocationStatus(m.ToStatus),
			Event:        domain.AllocationEvent(m.Event),
			ActorID:      m.ActorID,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out, nil
}
