package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baherjr/OODB-Project/internal/model"
)

var vehicleColNames = []string{
	"vehicle_id", "make", "model", "year", "vin", "purchase_price", "price",
	"date_acquired", "status", "created_at", "updated_at",
}

func sampleVehicleRow() *sqlmock.Rows {
	return sqlmock.NewRows(vehicleColNames).AddRow(
		"V5", "Toyota", "Corolla", 2021, "JT123", 18000.0, 21999.99,
		"2025-05-01", "in_stock", "2025-05-01 10:00:00", "2025-05-01 10:00:00")
}

func TestVehicleCreateThenGetRoundTrip(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewVehicleRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT seq FROM id_counters").WithArgs("vehicles").
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(4))
	mock.ExpectExec("INSERT INTO id_counters").WithArgs("vehicles", 5, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO vehicles").
		WithArgs("V5", "Toyota", "Corolla", 2021, "JT123", 18000.0, 21999.99, "2025-05-01", "in_stock").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	v := &model.Vehicle{
		Make: "Toyota", Model: "Corolla", Year: 2021, VIN: "JT123",
		PurchasePrice: 18000.0, Price: 21999.99, DateAcquired: "2025-05-01",
		Status: "in_stock",
	}
	require.NoError(t, repo.Create(context.Background(), v))
	assert.Equal(t, "V5", v.VehicleID)

	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE vehicle_id").WithArgs("V5").
		WillReturnRows(sampleVehicleRow())

	got, err := repo.GetByID(context.Background(), "V5")
	require.NoError(t, err)
	assert.Equal(t, v.VehicleID, got.VehicleID)
	assert.Equal(t, v.Make, got.Make)
	assert.Equal(t, v.Price, got.Price)
	assert.Equal(t, v.Status, got.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleUpdateIdenticalValuesIsNotAMiss(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewVehicleRepo(db)

	// MySQL reports zero affected rows for a no-change update; the row still
	// exists, so this must not surface as not-found.
	mock.ExpectExec("UPDATE vehicles SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE vehicle_id").WithArgs("V5").
		WillReturnRows(sampleVehicleRow())

	v := &model.Vehicle{
		VehicleID: "V5", Make: "Toyota", Model: "Corolla", Year: 2021, VIN: "JT123",
		PurchasePrice: 18000.0, Price: 21999.99, DateAcquired: "2025-05-01",
		Status: "in_stock",
	}
	assert.NoError(t, repo.Update(context.Background(), v))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleUpdateUnknownID(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewVehicleRepo(db)

	mock.ExpectExec("UPDATE vehicles SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE vehicle_id").WithArgs("V404").
		WillReturnError(sql.ErrNoRows)

	v := &model.Vehicle{VehicleID: "V404", Make: "Toyota", Model: "Corolla", Year: 2021, VIN: "JT123", Status: "sold"}
	assert.ErrorIs(t, repo.Update(context.Background(), v), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
