package impl

import (
	"context"
	"log/slog"

	"drivefleet/config"
	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/domain/service"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultRegistrationAttempts bounds the registration-number retry loop when
// the configured value is missing. The 8-digit keyspace is sparse, so a draw
// rarely needs more than one attempt; the bound guards liveness, not throughput.
const defaultRegistrationAttempts = 1000

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	txManager    repository.TransactionManager
	sellerRepo   repository.SellerRepository
	orderRepo    repository.SalesOrderRepository
	userUsecase  usecase.UserUsecase
	orderUsecase usecase.OrderUsecase
	numberSource service.RegistrationNumberSource
	maxAttempts  int
	logger       *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(
	txManager repository.TransactionManager,
	sellerRepo repository.SellerRepository,
	orderRepo repository.SalesOrderRepository,
	userUsecase usecase.UserUsecase,
	orderUsecase usecase.OrderUsecase,
	numberSource service.RegistrationNumberSource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SellerUsecase {
	maxAttempts := defaultRegistrationAttempts
	if cfg.Registration != nil && cfg.Registration.MaxAttempts > 0 {
		maxAttempts = cfg.Registration.MaxAttempts
	}

	return &sellerService{
		txManager:    txManager,
		sellerRepo:   sellerRepo,
		orderRepo:    orderRepo,
		userUsecase:  userUsecase,
		orderUsecase: orderUsecase,
		numberSource: numberSource,
		maxAttempts:  maxAttempts,
		logger:       logger,
	}
}

// Create registers the identity and the seller record in one transaction.
// The whole transaction is retried when the store reports a registration-number
// conflict, since two concurrent writers can both pass the pre-check.
func (srv *sellerService) Create(ctx context.Context, input *usecase.UserInput) (*entity.Seller, error) {
	for attempt := 0; attempt < srv.maxAttempts; attempt++ {
		seller, err := srv.createOnce(ctx, input)
		if errors.Is(err, repository.ErrRegistrationNumberTaken) {
			srv.logger.Warn("Registration number conflict, retrying", slog.Int("attempt", attempt+1))

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to execute seller creation transaction")
		}
		srv.logger.Info("Seller created", slog.Any("sellerID", seller.ID), slog.Int64("registrationNumber", seller.RegistrationNumber))

		return seller, nil
	}

	return nil, errors.Wrap(domainerrors.ErrRegistrationNumberExhausted, "seller creation failed")
}

func (srv *sellerService) createOnce(ctx context.Context, input *usecase.UserInput) (*entity.Seller, error) {
	var created *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, txErr := srv.userUsecase.RegisterTx(ctx, repoFactory, input)
		if txErr != nil {
			return txErr
		}

		sellerRepo := repoFactory.SellerRepo()

		number, txErr := srv.pickRegistrationNumber(ctx, sellerRepo)
		if txErr != nil {
			return txErr
		}

		seller := &entity.Seller{
			UserID:             user.ID,
			User:               user,
			RegistrationNumber: number,
		}
		if txErr := sellerRepo.Create(ctx, seller); txErr != nil {
			return txErr
		}
		created = seller

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// pickRegistrationNumber draws candidates until one is free in the store.
// The insert's unique constraint remains the final arbiter.
func (srv *sellerService) pickRegistrationNumber(ctx context.Context, sellerRepo repository.SellerRepository) (int64, error) {
	for attempt := 0; attempt < srv.maxAttempts; attempt++ {
		number := srv.numberSource.Next()

		taken, err := sellerRepo.ExistsByRegistrationNumber(ctx, number)
		if err != nil {
			return 0, errors.Wrap(err, "failed to check registration number uniqueness")
		}
		if !taken {
			return number, nil
		}
	}

	return 0, errors.Wrap(domainerrors.ErrRegistrationNumberExhausted, "registration number generation failed")
}

// Update forwards the identity fields to the identity store. The registration
// number is never altered, whatever the request carries.
func (srv *sellerService) Update(ctx context.Context, id uuid.UUID, input *usecase.UserInput) (*entity.Seller, error) {
	var updated *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, txErr := repoFactory.SellerRepo().FindByID(ctx, id)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrSellerNotFound) {
				return errors.Wrap(domainerrors.ErrSellerNotFound, "update failed")
			}

			return errors.Wrap(txErr, "failed to find seller for update")
		}

		user, txErr := srv.userUsecase.ModifyTx(ctx, repoFactory, seller.UserID, input)
		if txErr != nil {
			return txErr
		}
		seller.User = user
		updated = seller

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute seller update transaction")
	}

	return updated, nil
}

// GetByID looks up a seller with its identity joined.
func (srv *sellerService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSellerNotFound, "lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return seller, nil
}

// ListActive returns active sellers, each with its order history rendered
// through the coordinator's projection.
func (srv *sellerService) ListActive(ctx context.Context) ([]*usecase.SellerView, error) {
	sellers, err := srv.sellerRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active sellers")
	}

	views := make([]*usecase.SellerView, 0, len(sellers))
	for _, seller := range sellers {
		orders, listErr := srv.orderRepo.ListBySellerID(ctx, seller.ID)
		if listErr != nil {
			return nil, errors.Wrap(listErr, "failed to list seller orders")
		}

		summaries := make([]*usecase.OrderSummary, 0, len(orders))
		for _, order := range orders {
			if order.Seller == nil {
				order.Seller = seller
			}
			summaries = append(summaries, srv.orderUsecase.ProjectSummary(order))
		}

		views = append(views, &usecase.SellerView{Seller: seller, Orders: summaries})
	}

	return views, nil
}

// Delete excludes the seller's identity. A seller with any linked order,
// whatever its status, can never be deleted.
func (srv *sellerService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, txErr := repoFactory.SellerRepo().FindByID(ctx, id)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrSellerNotFound) {
				return errors.Wrap(domainerrors.ErrSellerNotFound, "deletion failed")
			}

			return errors.Wrap(txErr, "failed to find seller for deletion")
		}

		linked, txErr := repoFactory.OrderRepo().CountBySellerID(ctx, seller.ID)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to count seller orders")
		}
		if linked > 0 {
			return errors.Wrap(domainerrors.ErrSellerHasLinkedOrders, "deletion failed")
		}

		return srv.userUsecase.ExcludeTx(ctx, repoFactory, seller.UserID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute seller deletion transaction")
	}
	srv.logger.Info("Seller excluded", slog.Any("sellerID", id))

	return nil
}
