package postgres

import (
	"context"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vehicleRepository implements the domain.VehicleRepository interface using GORM.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// FindByID retrieves a single vehicle by its unique ID.
func (repo *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel
	if err := repo.db.WithContext(ctx).First(&vehicleM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by id")
	}

	return toVehicleDomain(&vehicleM), nil
}

// ExistsByPlate reports whether any vehicle already carries the given plate.
func (repo *vehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.VehicleModel{}).
		Where("plate = ?", plate).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check plate existence")
	}

	return count > 0, nil
}

// Create persists a new vehicle record.
func (repo *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := fromVehicleDomain(vehicle)

	if err := repo.db.WithContext(ctx).Create(vehicleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err, domainerrors.ErrPlateAlreadyExists)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle")
	}

	vehicle.ID = vehicleM.ID
	vehicle.CreatedAt = vehicleM.CreatedAt
	vehicle.UpdatedAt = vehicleM.UpdatedAt

	return nil
}

// Update modifies an existing vehicle record.
func (repo *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := fromVehicleDomain(vehicle)

	if err := repo.db.WithContext(ctx).Save(vehicleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err, domainerrors.ErrPlateAlreadyExists)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update vehicle")
	}

	vehicle.UpdatedAt = vehicleM.UpdatedAt

	return nil
}

// List returns the whole catalog ordered by creation time.
func (repo *vehicleRepository) List(ctx context.Context) ([]*entity.Vehicle, error) {
	var vehicleMs []*model.VehicleModel
	if err := repo.db.WithContext(ctx).
		Order("created_at").
		Find(&vehicleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleMs))
	for _, vehicleM := range vehicleMs {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

// toVehicleDomain converts a GORM VehicleModel to a domain Vehicle entity.
func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	return &entity.Vehicle{
		ID:              data.ID,
		Brand:           data.Brand,
		Model:           data.Model,
		YearManufacture: data.YearManufacture,
		YearModel:       data.YearModel,
		Plate:           data.Plate,
		Color:           data.Color,
		Mileage:         data.Mileage,
		Price:           data.Price,
		Status:          entity.VehicleStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromVehicleDomain converts a domain Vehicle entity to a GORM VehicleModel.
func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	if data == nil {
		return nil
	}

	return &model.VehicleModel{
		ID:              data.ID,
		Brand:           data.Brand,
		Model:           data.Model,
		YearManufacture: data.YearManufacture,
		YearModel:       data.YearModel,
		Plate:           data.Plate,
		Color:           data.Color,
		Mileage:         data.Mileage,
		Price:           data.Price,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
