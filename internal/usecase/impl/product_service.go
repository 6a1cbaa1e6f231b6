package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/usecase"
)

// User-facing notification text, kept as the app ships it.
const (
	addedNotificationTitle = "Novo Produto Adicionado!"
	addedNotificationBody  = "O produto %s foi adicionado com sucesso."
	removeConfirmMessage   = "Deseja excluir o produto %q?"
)

// productService implements the ProductUsecase interface.
type productService struct {
	products  repository.ProductRepository
	notifier  service.Notifier
	haptics   service.Haptics
	confirmer service.Confirmer
	logger    *slog.Logger
}

// NewProductService is the constructor for productService. It receives all dependencies as interfaces.
func NewProductService(
	products repository.ProductRepository,
	notifier service.Notifier,
	haptics service.Haptics,
	confirmer service.Confirmer,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		products:  products,
		notifier:  notifier,
		haptics:   haptics,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Add coerces and validates the draft, stores a new product, then fires the
// haptic pulse and the creation notification. Both side effects are
// best-effort: their failures are logged and swallowed.
func (s *productService) Add(ctx context.Context, draft *usecase.ProductDraft) (*entity.Product, error) {
	// An empty request body binds to a nil draft; treat it like any other
	// invalid submission.
	if draft == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	product := coerceDraft(draft)
	if product.Name == "" || product.Price == 0 {
		return nil, domainerrors.ErrValidationFailed
	}
	product.ID = uuid.NewString()

	if err := s.products.Insert(ctx, product); err != nil {
		s.logger.Error("failed to insert product", slog.Any("error", err))
		return nil, domainerrors.ErrStorage
	}

	s.haptics.Pulse(ctx)
	if err := s.notifier.Notify(ctx, addedNotificationTitle, fmt.Sprintf(addedNotificationBody, product.Name)); err != nil {
		s.logger.Warn("product notification failed",
			slog.String("product", product.Name),
			slog.Any("error", err),
		)
	}

	s.logger.Info("product added",
		slog.String("id", product.ID),
		slog.String("name", product.Name),
	)

	return product, nil
}

// Update coerces and validates the draft and replaces the identified
// product in place, preserving its ID. Edits are silent: no vibration, no
// notification.
func (s *productService) Update(ctx context.Context, id string, draft *usecase.ProductDraft) (*entity.Product, error) {
	if draft == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	product := coerceDraft(draft)
	if product.Name == "" || product.Price == 0 {
		return nil, domainerrors.ErrValidationFailed
	}
	product.ID = id

	err := s.products.Replace(ctx, product)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		s.logger.Error("failed to replace product", slog.Any("error", err))
		return nil, domainerrors.ErrStorage
	}

	return product, nil
}

// Remove asks the confirmer before deleting. Cancelling keeps the product;
// an unknown ID leaves the collection untouched.
func (s *productService) Remove(ctx context.Context, id string) (*usecase.RemoveOutput, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return &usecase.RemoveOutput{Removed: false}, nil
	}
	if err != nil {
		s.logger.Error("failed to load product", slog.Any("error", err))
		return nil, domainerrors.ErrStorage
	}

	confirmed, err := s.confirmer.Confirm(ctx, fmt.Sprintf(removeConfirmMessage, product.Name))
	if err != nil {
		// A failed prompt counts as a cancel; deleting without an answer
		// would be worse than keeping the record.
		s.logger.Warn("confirmation prompt failed", slog.Any("error", err))
		return &usecase.RemoveOutput{Removed: false}, nil
	}
	if !confirmed {
		return &usecase.RemoveOutput{Removed: false}, nil
	}

	if err := s.products.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete product", slog.Any("error", err))
		return nil, domainerrors.ErrStorage
	}

	s.logger.Info("product removed", slog.String("id", id))

	return &usecase.RemoveOutput{Removed: true}, nil
}

// List returns a stable-sorted copy of the collection. An empty or unknown
// key keeps insertion order.
func (s *productService) List(ctx context.Context, key entity.SortKey) ([]entity.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		s.logger.Error("failed to list products", slog.Any("error", err))
		return nil, domainerrors.ErrStorage
	}

	switch key {
	case entity.SortByQuantity:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Quantity < products[j].Quantity
		})
	case entity.SortByExpiry:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ExpiresAt().Before(products[j].ExpiresAt())
		})
	case entity.SortByExits:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Exits > products[j].Exits
		})
	}

	return products, nil
}

// coerceDraft applies the form's type coercion: integers and the price fall
// back to zero when the text does not parse; negative stock numbers are
// treated the same as unparseable ones.
func coerceDraft(draft *usecase.ProductDraft) *entity.Product {
	quantity, err := strconv.Atoi(draft.Quantity)
	if err != nil || quantity < 0 {
		quantity = 0
	}
	exits, err := strconv.Atoi(draft.Exits)
	if err != nil || exits < 0 {
		exits = 0
	}
	price, err := strconv.ParseFloat(draft.Price, 64)
	if err != nil || price < 0 {
		price = 0
	}

	return &entity.Product{
		Name:       draft.Name,
		Quantity:   quantity,
		ExpiryDate: draft.ExpiryDate,
		Exits:      exits,
		Price:      price,
	}
}
