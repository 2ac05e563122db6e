package readstore

import (
	"context"

	"booking-crm/internal/infra"
	"booking-crm/internal/infra/db"
	"booking-crm/internal/pkg/pgconv"
	"booking-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerReadStore struct{}

func NewCustomerReadStore() *CustomerReadStore {
	return &CustomerReadStore{}
}

const customerSnapshotSQL = `
SELECT id, name, email FROM customers WHERE id = $1`

func (s *CustomerReadStore) SnapshotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	var snap shared.CustomerSnapshot
	err := dbtx.QueryRow(ctx, customerSnapshotSQL, id).Scan(&snap.ID, &snap.Name, &snap.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load customer snapshot", err)
	}
	return &snap, nil
}
