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
)

type DealRepository interface {
	Add(tx *sql.Tx, d domain.Deal) (*domain.Deal, error)
	Get(tx *sql.Tx, id uuid.UUID) (*domain.Deal, error)
	ListByFund(tx *sql.Tx, fundID uuid.UUID) ([]domain.Deal, error)
}

type dealRepositoryHandler struct {
	Db *sql.DB
}

func NewDealRepository(db *sql.DB) DealRepository {
	return dealRepositoryHandler{Db: db}
}

func (h dealRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	return db
}

func (h dealRepositoryHandler) Add(tx *sql.Tx, d domain.Deal) (*domain.Deal, error) {
	if d.DealID == uuid.Nil {
		d.DealID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	query := table.Deal.
		INSERT(table.Deal.AllColumns).
		MODEL(model.Deal{
			DealID:    d.DealID,
			FundID:    d.FundID,
			Name:      d.Name,
			Sector:    d.Sector,
			Stage:     d.Stage,
			CreatedAt: d.CreatedAt,
		}).
		RETURNING(table.Deal.AllColumns)

	out := model.Deal{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert deal %s: %w", d.Name, err)
	}

	result := dealFromModel(out)
	return &result, nil
}

func (h dealRepositoryHandler) Get(tx *sql.Tx, id uuid.UUID) (*domain.Deal, error) {
	query := table.Deal.
		SELECT(table.Deal.AllColumns).
		WHERE(table.Deal.DealID.EQ(postgres.UUID(id)))

	out := model.Deal{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.NewDealNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deal %s: %w", id, err)
	}

	result := dealFromModel(out)
	return &result, nil
}

func (h dealRepositoryHandler) ListByFund(tx *sql.Tx, fundID uuid.UUID) ([]domain.Deal, error) {
	query := table.Deal.
		SELECT(table.Deal.AllColumns).
		WHERE(table.Deal.FundID.EQ(postgres.UUID(fundID))).
		ORDER_BY(table.Deal.Name.ASC())

	models := []model.Deal{}
	err := query.Query(h.queryable(tx), &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals for fund %s: %w", fundID, err)
	}

	out := []domain.Deal{}
	for _, m := range models {
		out = append(out, dealFromModel(m))
	}
	return out, nil
}

func dealFromModel(m model.Deal) domain.Deal {
	return domain.Deal{
		DealID:    m.DealID,
		FundID:    m.FundID,
		Name:      m.Name,
		Sector:    m.Sector,
		Stage:     m.Stage,
		CreatedAt: m.CreatedAt,
	}
}
