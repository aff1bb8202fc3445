package entity

import (
	"testing"

	domainerrors "drivefleet/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVehicle() *Vehicle {
	return &Vehicle{
		Brand:           "Honda",
		Model:           "Civic",
		YearManufacture: 2021,
		YearModel:       2022,
		Plate:           "ABC1D23",
		Mileage:         32000,
		Price:           87500,
		Status:          VehicleStatusAvailable,
	}
}

func TestVehicle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Vehicle)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Vehicle) {}, wantErr: false},
		{name: "manufacture year too old", mutate: func(v *Vehicle) { v.YearManufacture = 1899 }, wantErr: true},
		{name: "model year too old", mutate: func(v *Vehicle) { v.YearModel = 1850 }, wantErr: true},
		{name: "boundary year accepted", mutate: func(v *Vehicle) { v.YearManufacture = 1900; v.YearModel = 1900 }, wantErr: false},
		{name: "negative mileage", mutate: func(v *Vehicle) { v.Mileage = -1 }, wantErr: true},
		{name: "zero mileage accepted", mutate: func(v *Vehicle) { v.Mileage = 0 }, wantErr: false},
		{name: "zero price", mutate: func(v *Vehicle) { v.Price = 0 }, wantErr: true},
		{name: "negative price", mutate: func(v *Vehicle) { v.Price = -500 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := validVehicle()
			tt.mutate(vehicle)

			err := vehicle.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestVehicle_Reserve(t *testing.T) {
	vehicle := validVehicle()

	require.NoError(t, vehicle.Reserve())
	assert.Equal(t, VehicleStatusReserved, vehicle.Status)

	err := vehicle.Reserve()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVehicleNotAvailable))
}

func TestVehicle_Release(t *testing.T) {
	vehicle := validVehicle()

	err := vehicle.Release()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	require.NoError(t, vehicle.Reserve())
	require.NoError(t, vehicle.Release())
	assert.Equal(t, VehicleStatusAvailable, vehicle.Status)
}

func TestVehicle_MarkSold(t *testing.T) {
	vehicle := validVehicle()

	err := vehicle.MarkSold()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	require.NoError(t, vehicle.Reserve())
	require.NoError(t, vehicle.MarkSold())
	assert.Equal(t, VehicleStatusSold, vehicle.Status)

	// SOLD is terminal.
	assert.Error(t, vehicle.Reserve())
	assert.Error(t, vehicle.Release())
	assert.Error(t, vehicle.MarkSold())
}
