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

type FundRepository interface {
	Add(tx *sql.Tx, f domain.Fund) (*domain.Fund, error)
	Get(tx *sql.Tx, id uuid.UUID) (*domain.Fund, error)
}

type fundRepositoryHandler struct {
	Db *sql.DB
}

func NewFundRepository(db *sql.DB) FundRepository {
	return fundRepositoryHandler{Db: db}
}

func (h fundRepositoryHandler) Add(tx *sql.Tx, f domain.Fund) (*domain.Fund, error) {
	if f.FundID == uuid.Nil {
		f.FundID = uuid.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	query := table.Fund.
		INSERT(table.Fund.AllColumns).
		MODEL(model.Fund{
			FundID:            f.FundID,
			Name:              f.Name,
			Currency:          f.Currency,
			NotificationEmail: f.NotificationEmail,
			CreatedAt:         f.CreatedAt,
		}).
		RETURNING(table.Fund.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Fund{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert fund: %w", err)
	}

	result := fundFromModel(out)
	return &result, nil
}

func (h fundRepositoryHandler) Get(tx *sql.Tx, id uuid.UUID) (*domain.Fund, error) {
	query := table.Fund.
		SELECT(table.Fund.AllColumns).
		WHERE(table.Fund.FundID.EQ(postgres.UUID(id)))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Fund{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, domain.NewFundNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fund %s: %w", id, err)
	}

	result := fundFromModel(out)
	return &result, nil
}

func fundFromModel(m model.Fund) domain.Fund {
	return domain.Fund{
		FundID:            m.FundID,
		Name:              m.Name,
		Currency:          m.Currency,
		NotificationEmail: m.NotificationEmail,
		CreatedAt:         m.CreatedAt,
	}
}
