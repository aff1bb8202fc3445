package impl

import (
	"context"
	"log/slog"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// vehicleService implements the VehicleUsecase interface.
type vehicleService struct {
	txManager   repository.TransactionManager
	vehicleRepo repository.VehicleRepository
	logger      *slog.Logger
}

// NewVehicleService is the constructor for vehicleService.
func NewVehicleService(
	txManager repository.TransactionManager,
	vehicleRepo repository.VehicleRepository,
	logger *slog.Logger,
) usecase.VehicleUsecase {
	return &vehicleService{
		txManager:   txManager,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Add registers a vehicle with status AVAILABLE.
func (srv *vehicleService) Add(ctx context.Context, input *usecase.AddVehicleInput) (*entity.Vehicle, error) {
	vehicle := &entity.Vehicle{
		Brand:           input.Brand,
		Model:           input.Model,
		YearManufacture: input.YearManufacture,
		YearModel:       input.YearModel,
		Plate:           input.Plate,
		Color:           input.Color,
		Mileage:         input.Mileage,
		Price:           input.Price,
		Status:          entity.VehicleStatusAvailable,
	}
	if err := vehicle.Validate(); err != nil {
		return nil, errors.Wrap(err, "vehicle registration failed")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vehicleRepo := repoFactory.VehicleRepo()

		taken, txErr := vehicleRepo.ExistsByPlate(ctx, input.Plate)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to check plate uniqueness")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrPlateAlreadyExists, "vehicle registration failed")
		}

		return vehicleRepo.Create(ctx, vehicle)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute vehicle registration transaction")
	}
	srv.logger.Info("Vehicle added", slog.Any("vehicleID", vehicle.ID), slog.String("plate", vehicle.Plate))

	return vehicle, nil
}

// GetByID looks up a vehicle.
func (srv *vehicleService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVehicleNotFound, "lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find vehicle by id")
	}

	return vehicle, nil
}

// List returns the whole catalog.
func (srv *vehicleService) List(ctx context.Context) ([]*entity.Vehicle, error) {
	vehicles, err := srv.vehicleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	return vehicles, nil
}

// Reserve transitions AVAILABLE -> RESERVED.
func (srv *vehicleService) Reserve(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return srv.transition(ctx, id, (*entity.Vehicle).Reserve)
}

// Release transitions RESERVED -> AVAILABLE.
func (srv *vehicleService) Release(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return srv.transition(ctx, id, (*entity.Vehicle).Release)
}

// MarkSold transitions RESERVED -> SOLD.
func (srv *vehicleService) MarkSold(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return srv.transition(ctx, id, (*entity.Vehicle).MarkSold)
}

// transition applies a status edge inside one transaction so the read and the
// write of the vehicle row commit together.
func (srv *vehicleService) transition(ctx context.Context, id uuid.UUID, apply func(*entity.Vehicle) error) (*entity.Vehicle, error) {
	var vehicle *entity.Vehicle

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vehicleRepo := repoFactory.VehicleRepo()

		found, txErr := vehicleRepo.FindByID(ctx, id)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrVehicleNotFound) {
				return errors.Wrap(domainerrors.ErrVehicleNotFound, "transition failed")
			}

			return errors.Wrap(txErr, "failed to find vehicle for transition")
		}

		if txErr := apply(found); txErr != nil {
			return txErr
		}

		if txErr := vehicleRepo.Update(ctx, found); txErr != nil {
			return errors.Wrap(txErr, "failed to update vehicle status")
		}
		vehicle = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute vehicle transition transaction")
	}
	srv.logger.Debug("Vehicle status changed", slog.Any("vehicleID", id), slog.Any("status", vehicle.Status))

	return vehicle, nil
}
