package repository

import (
	"fmt"

	"fundtrack/internal/db/models/postgres/public/model"
	"fundtrack/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// ApiRequestRepository records every HTTP request with its outcome.
type ApiRequestRepository interface {
	Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Executable, ar model.APIRequest) error
}

type ApiRequestRepositoryHandler struct{}

func (h ApiRequestRepositoryHandler) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	if ar.RequestID == uuid.Nil {
		ar.RequestID = uuid.New()
	}

	query := table.APIRequest.
		INSERT(table.APIRequest.AllColumns).
		MODEL(ar).
		RETURNING(table.APIRequest.AllColumns)

	out := &model.APIRequest{}
	err := query.Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert API request: %w", err)
	}

	return out, nil
}

func (h ApiRequestRepositoryHandler) Update(db qrm.Executable, ar model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.UserID, table.APIRequest.DurationMs, table.APIRequest.StatusCode, table.APIRequest.ResponseBody).
		MODEL(ar).
		WHERE(table.APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update API request %s: %w", ar.RequestID, err)
	}

	return nil
}
