package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrBrandNotFound         = errors.New("brand not found")
	ErrEquipmentTypeNotFound = errors.New("equipment type not found")
	ErrOrderStatusNotFound   = errors.New("order status not found")
	ErrInvalidTaxonomyID     = errors.New("invalid taxonomy id")
	ErrTaxonomyLabel         = errors.New("taxonomy label is required")
	ErrEntityInUse           = errors.New("entity referenced by service orders")
)

// ITaxonomyUseCase manages the three lookup tables referenced by service
// orders: brands, equipment types, and order statuses. Deleting an entry
// that any order still points at is refused with ErrEntityInUse.
type ITaxonomyUseCase interface {
	CreateBrand(ctx context.Context, b entities.Brand) (entities.Brand, error)
	ListBrands(ctx context.Context) ([]entities.Brand, error)
	UpdateBrand(ctx context.Context, b entities.Brand) (entities.Brand, error)
	DeleteBrand(ctx context.Context, id string) error

	CreateEquipmentType(ctx context.Context, e entities.EquipmentType) (entities.EquipmentType, error)
	ListEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error)
	UpdateEquipmentType(ctx context.Context, e entities.EquipmentType) (entities.EquipmentType, error)
	DeleteEquipmentType(ctx context.Context, id string) error

	CreateStatus(ctx context.Context, s entities.OrderStatus) (entities.OrderStatus, error)
	ListStatuses(ctx context.Context) ([]entities.OrderStatus, error)
	UpdateStatus(ctx context.Context, s entities.OrderStatus) (entities.OrderStatus, error)
	DeleteStatus(ctx context.Context, id string) error
}

type TaxonomyUseCase struct {
	brands    interfaces.IBrandRepository
	equipment interfaces.IEquipmentTypeRepository
	statuses  interfaces.IStatusRepository
	orderRepo interfaces.IServiceOrderRepository
}

var _ ITaxonomyUseCase = (*TaxonomyUseCase)(nil)

func NewTaxonomyUseCase(
	brands interfaces.IBrandRepository,
	equipment interfaces.IEquipmentTypeRepository,
	statuses interfaces.IStatusRepository,
	orderRepo interfaces.IServiceOrderRepository,
) *TaxonomyUseCase {
	return &TaxonomyUseCase{brands: brands, equipment: equipment, statuses: statuses, orderRepo: orderRepo}
}

func (u *TaxonomyUseCase) CreateBrand(ctx context.Context, b entities.Brand) (entities.Brand, error) {
	b.Label = strings.TrimSpace(b.Label)
	if b.Label == "" {
		return entities.Brand{}, ErrTaxonomyLabel
	}
	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	created, err := u.brands.Create(ctx, b)
	if err != nil {
		log.Printf("[taxonomy][usecase] brand create failed label=%q err=%v", b.Label, err)
		return entities.Brand{}, err
	}
	return created, nil
}

func (u *TaxonomyUseCase) ListBrands(ctx context.Context) ([]entities.Brand, error) {
	return u.brands.List(ctx)
}

func (u *TaxonomyUseCase) UpdateBrand(ctx context.Context, b entities.Brand) (entities.Brand, error) {
	b.Label = strings.TrimSpace(b.Label)
	if strings.TrimSpace(b.ID) == "" {
		return entities.Brand{}, ErrInvalidTaxonomyID
	}
	if b.Label == "" {
		return entities.Brand{}, ErrTaxonomyLabel
	}
	current, err := u.brands.GetByID(ctx, b.ID)
	if err != nil {
		return entities.Brand{}, err
	}
	if current.ID == "" {
		return entities.Brand{}, ErrBrandNotFound
	}
	b.CreatedAt = current.CreatedAt
	b.UpdatedAt = time.Now().UTC()
	return u.brands.Update(ctx, b)
}

func (u *TaxonomyUseCase) DeleteBrand(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTaxonomyID
	}
	current, err := u.brands.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrBrandNotFound
	}
	n, err := u.orderRepo.CountByBrandID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[taxonomy][usecase] brand delete refused id=%s orders=%d", id, n)
		return ErrEntityInUse
	}
	return u.brands.Delete(ctx, id)
}

func (u *TaxonomyUseCase) CreateEquipmentType(ctx context.Context, e entities.EquipmentType) (entities.EquipmentType, error) {
	e.Label = strings.TrimSpace(e.Label)
	if e.Label == "" {
		return entities.EquipmentType{}, ErrTaxonomyLabel
	}
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	created, err := u.equipment.Create(ctx, e)
	if err != nil {
		log.Printf("[taxonomy][usecase] equipment type create failed label=%q err=%v", e.Label, err)
		return entities.EquipmentType{}, err
	}
	return created, nil
}

func (u *TaxonomyUseCase) ListEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error) {
	return u.equipment.List(ctx)
}

func (u *TaxonomyUseCase) UpdateEquipmentType(ctx context.Context, e entities.EquipmentType) (entities.EquipmentType, error) {
	e.Label = strings.TrimSpace(e.Label)
	if strings.TrimSpace(e.ID) == "" {
		return entities.EquipmentType{}, ErrInvalidTaxonomyID
	}
	if e.Label == "" {
		return entities.EquipmentType{}, ErrTaxonomyLabel
	}
	current, err := u.equipment.GetByID(ctx, e.ID)
	if err != nil {
		return entities.EquipmentType{}, err
	}
	if current.ID == "" {
		return entities.EquipmentType{}, ErrEquipmentTypeNotFound
	}
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	return u.equipment.Update(ctx, e)
}

func (u *TaxonomyUseCase) DeleteEquipmentType(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTaxonomyID
	}
	current, err := u.equipment.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrEquipmentTypeNotFound
	}
	n, err := u.orderRepo.CountByEquipmentTypeID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[taxonomy][usecase] equipment type delete refused id=%s orders=%d", id, n)
		return ErrEntityInUse
	}
	return u.equipment.Delete(ctx, id)
}

func (u *TaxonomyUseCase) CreateStatus(ctx context.Context, s entities.OrderStatus) (entities.OrderStatus, error) {
	s.Label = strings.TrimSpace(s.Label)
	if s.Label == "" {
		return entities.OrderStatus{}, ErrTaxonomyLabel
	}
	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	created, err := u.statuses.Create(ctx, s)
	if err != nil {
		log.Printf("[taxonomy][usecase] status create failed label=%q err=%v", s.Label, err)
		return entities.OrderStatus{}, err
	}
	return created, nil
}

func (u *TaxonomyUseCase) ListStatuses(ctx context.Context) ([]entities.OrderStatus, error) {
	return u.statuses.List(ctx)
}

func (u *TaxonomyUseCase) UpdateStatus(ctx context.Context, s entities.OrderStatus) (entities.OrderStatus, error) {
	s.Label = strings.TrimSpace(s.Label)
	if strings.TrimSpace(s.ID) == "" {
		return entities.OrderStatus{}, ErrInvalidTaxonomyID
	}
	if s.Label == "" {
		return entities.OrderStatus{}, ErrTaxonomyLabel
	}
	current, err := u.statuses.GetByID(ctx, s.ID)
	if err != nil {
		return entities.OrderStatus{}, err
	}
	if current.ID == "" {
		return entities.OrderStatus{}, ErrOrderStatusNotFound
	}
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	return u.statuses.Update(ctx, s)
}

func (u *TaxonomyUseCase) DeleteStatus(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTaxonomyID
	}
	current, err := u.statuses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrOrderStatusNotFound
	}
	n, err := u.orderRepo.CountByStatusID(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[taxonomy][usecase] status delete refused id=%s orders=%d", id, n)
		return ErrEntityInUse
	}
	return u.statuses.Delete(ctx, id)
}
