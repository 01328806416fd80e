package stock

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db"
	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/enums"
	pkgerrors "github.com/motorhub/motorhub-backend/pkg/errors"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// Service exposes inventory management operations: item/category/supplier
// CRUD plus the stock movements that mutate item quantities.
type Service interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	UpdateItem(ctx context.Context, id int64, item *models.Item) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]models.ItemCategory, error)
	GetCategory(ctx context.Context, id int64) (*models.ItemCategory, error)
	CreateCategory(ctx context.Context, category *models.ItemCategory) (*models.ItemCategory, error)
	UpdateCategory(ctx context.Context, id int64, category *models.ItemCategory) (*models.ItemCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, supplier *models.Supplier) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error

	ListStockIns(ctx context.Context) ([]models.StockIn, error)
	GetStockIn(ctx context.Context, id int64) (*models.StockIn, error)
	CreateStockIn(ctx context.Context, record *models.StockIn) (*models.StockIn, error)
	UpdateStockIn(ctx context.Context, id int64, record *models.StockIn) (*models.StockIn, error)
	DeleteStockIn(ctx context.Context, id int64) error

	ListStockOuts(ctx context.Context) ([]models.StockOut, error)
	GetStockOut(ctx context.Context, id int64) (*models.StockOut, error)
	CreateStockOut(ctx context.Context, record *models.StockOut) (*models.StockOut, error)
	UpdateStockOut(ctx context.Context, id int64, record *models.StockOut) (*models.StockOut, error)
	DeleteStockOut(ctx context.Context, id int64) error

	ListRestocks(ctx context.Context) ([]models.Restock, error)
	GetRestock(ctx context.Context, id int64) (*models.Restock, error)
	CreateRestock(ctx context.Context, record *models.Restock) (*models.Restock, error)
	UpdateRestock(ctx context.Context, id int64, record *models.Restock) (*models.Restock, error)
	DeleteRestock(ctx context.Context, id int64) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs the inventory service.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stock repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return err
}

// --- items ---

func (s *service) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *service) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "item not found")
	}
	return item, nil
}

func (s *service) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	item.ItemID = 0
	item.StockLevel = DeriveStockLevel(item.QtyAvailable, item.RecorderLevel)
	if item.UpdatedDate.IsZero() {
		item.UpdatedDate = types.Today()
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *service) UpdateItem(ctx context.Context, id int64, item *models.Item) (*models.Item, error) {
	existing, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "item not found")
	}
	item.ItemID = existing.ItemID
	item.StockLevel = DeriveStockLevel(item.QtyAvailable, item.RecorderLevel)
	if item.UpdatedDate.IsZero() {
		item.UpdatedDate = types.Today()
	}
	return s.repo.SaveItem(ctx, item)
}

func (s *service) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.repo.FindItemByID(ctx, id); err != nil {
		return notFoundOr(err, "item not found")
	}
	return s.repo.DeleteItem(ctx, id)
}

// --- categories ---

func (s *service) ListCategories(ctx context.Context) ([]models.ItemCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) GetCategory(ctx context.Context, id int64) (*models.ItemCategory, error) {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "category not found")
	}
	return category, nil
}

func (s *service) CreateCategory(ctx context.Context, category *models.ItemCategory) (*models.ItemCategory, error) {
	category.ItemCtgryID = 0
	return s.repo.CreateCategory(ctx, category)
}

func (s *service) UpdateCategory(ctx context.Context, id int64, category *models.ItemCategory) (*models.ItemCategory, error) {
	existing, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "category not found")
	}
	category.ItemCtgryID = existing.ItemCtgryID
	return s.repo.SaveCategory(ctx, category)
}

func (s *service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.repo.FindCategoryByID(ctx, id); err != nil {
		return notFoundOr(err, "category not found")
	}
	return s.repo.DeleteCategory(ctx, id)
}

// --- suppliers ---

func (s *service) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.repo.ListSuppliers(ctx)
}

func (s *service) GetSupplier(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier, err := s.repo.FindSupplierByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "supplier not found")
	}
	return supplier, nil
}

func (s *service) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	supplier.SupplierID = 0
	return s.repo.CreateSupplier(ctx, supplier)
}

func (s *service) UpdateSupplier(ctx context.Context, id int64, supplier *models.Supplier) (*models.Supplier, error) {
	existing, err := s.repo.FindSupplierByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "supplier not found")
	}
	supplier.SupplierID = existing.SupplierID
	return s.repo.SaveSupplier(ctx, supplier)
}

func (s *service) DeleteSupplier(ctx context.Context, id int64) error {
	if _, err := s.repo.FindSupplierByID(ctx, id); err != nil {
		return notFoundOr(err, "supplier not found")
	}
	return s.repo.DeleteSupplier(ctx, id)
}

// --- stock in ---

func (s *service) ListStockIns(ctx context.Context) ([]models.StockIn, error) {
	return s.repo.ListStockIns(ctx)
}

func (s *service) GetStockIn(ctx context.Context, id int64) (*models.StockIn, error) {
	record, err := s.repo.FindStockInByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "stock-in record not found")
	}
	return record, nil
}

// CreateStockIn persists the receipt and applies the received quantity to the
// item in the same transaction.
func (s *service) CreateStockIn(ctx context.Context, record *models.StockIn) (*models.StockIn, error) {
	record.StockInID = 0
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.FindItemByID(ctx, record.ItemID)
		if err != nil {
			return notFoundOr(err, "item not found")
		}

		if _, err := txRepo.CreateStockIn(ctx, record); err != nil {
			return err
		}

		item.QtyAvailable += record.QtyAdded
		item.SellPrice = record.SellPrice
		item.UnitPrice = record.UnitPrice
		item.StockLevel = DeriveStockLevel(item.QtyAvailable, item.RecorderLevel)
		item.UpdatedDate = record.DateAdded
		_, err = txRepo.SaveItem(ctx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) UpdateStockIn(ctx context.Context, id int64, record *models.StockIn) (*models.StockIn, error) {
	existing, err := s.repo.FindStockInByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "stock-in record not found")
	}
	// Administrative correction: the stored receipt is overwritten without
	// replaying quantity effects.
	record.StockInID = existing.StockInID
	return s.repo.SaveStockIn(ctx, record)
}

func (s *service) DeleteStockIn(ctx context.Context, id int64) error {
	if _, err := s.repo.FindStockInByID(ctx, id); err != nil {
		return notFoundOr(err, "stock-in record not found")
	}
	return s.repo.DeleteStockIn(ctx, id)
}

// --- stock out ---

func (s *service) ListStockOuts(ctx context.Context) ([]models.StockOut, error) {
	return s.repo.ListStockOuts(ctx)
}

func (s *service) GetStockOut(ctx context.Context, id int64) (*models.StockOut, error) {
	record, err := s.repo.FindStockOutByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "stock-out record not found")
	}
	return record, nil
}

// CreateStockOut persists the consumption and deducts the used quantity from
// the item in the same transaction. Consuming more than is on hand is a
// validation error.
func (s *service) CreateStockOut(ctx context.Context, record *models.StockOut) (*models.StockOut, error) {
	record.StockOutID = 0
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.FindItemByID(ctx, record.ItemID)
		if err != nil {
			return notFoundOr(err, "item not found")
		}

		if record.QtyUsed > item.QtyAvailable {
			return pkgerrors.New(pkgerrors.CodeValidation, "qtyUsed exceeds available quantity").
				WithDetails(map[string]any{"qtyUsed": record.QtyUsed, "qtyAvailable": item.QtyAvailable})
		}

		if _, err := txRepo.CreateStockOut(ctx, record); err != nil {
			return err
		}

		item.QtyAvailable -= record.QtyUsed
		item.StockLevel = DeriveStockLevel(item.QtyAvailable, item.RecorderLevel)
		item.UpdatedDate = record.DateUsed
		_, err = txRepo.SaveItem(ctx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) UpdateStockOut(ctx context.Context, id int64, record *models.StockOut) (*models.StockOut, error) {
	existing, err := s.repo.FindStockOutByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "stock-out record not found")
	}
	record.StockOutID = existing.StockOutID
	return s.repo.SaveStockOut(ctx, record)
}

func (s *service) DeleteStockOut(ctx context.Context, id int64) error {
	if _, err := s.repo.FindStockOutByID(ctx, id); err != nil {
		return notFoundOr(err, "stock-out record not found")
	}
	return s.repo.DeleteStockOut(ctx, id)
}

// --- restocks ---

func (s *service) ListRestocks(ctx context.Context) ([]models.Restock, error) {
	return s.repo.ListRestocks(ctx)
}

func (s *service) GetRestock(ctx context.Context, id int64) (*models.Restock, error) {
	record, err := s.repo.FindRestockByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "restock not found")
	}
	return record, nil
}

func (s *service) CreateRestock(ctx context.Context, record *models.Restock) (*models.Restock, error) {
	record.RestockID = 0
	if _, err := s.repo.FindItemByID(ctx, record.ItemID); err != nil {
		return nil, notFoundOr(err, "item not found")
	}
	return s.repo.CreateRestock(ctx, record)
}

// UpdateRestock overwrites the request; a transition into Completed applies
// the restocked quantity to the item.
func (s *service) UpdateRestock(ctx context.Context, id int64, record *models.Restock) (*models.Restock, error) {
	existing, err := s.repo.FindRestockByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "restock not found")
	}
	record.RestockID = existing.RestockID

	completing := record.RestockStatus == enums.RestockStatusCompleted &&
		existing.RestockStatus != enums.RestockStatusCompleted

	if !completing {
		return s.repo.SaveRestock(ctx, record)
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.FindItemByID(ctx, record.ItemID)
		if err != nil {
			return notFoundOr(err, "item not found")
		}

		if _, err := txRepo.SaveRestock(ctx, record); err != nil {
			return err
		}

		item.QtyAvailable += record.RestockedQty
		item.StockLevel = DeriveStockLevel(item.QtyAvailable, item.RecorderLevel)
		item.UpdatedDate = record.Date
		_, err = txRepo.SaveItem(ctx, item)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) DeleteRestock(ctx context.Context, id int64) error {
	if _, err := s.repo.FindRestockByID(ctx, id); err != nil {
		return notFoundOr(err, "restock not found")
	}
	return s.repo.DeleteRestock(ctx, id)
}
