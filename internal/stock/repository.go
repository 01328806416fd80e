package stock

import (
	"context"

	"gorm.io/gorm"

	"github.com/motorhub/motorhub-backend/pkg/db/models"
	"github.com/motorhub/motorhub-backend/pkg/types"
)

// Repository wires together persistence for items, categories, suppliers, and
// stock movements.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// --- items ---

func (r *Repository) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Order("item_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) FindItemByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "item_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Repository) SaveItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Repository) DeleteItem(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Item{}, "item_id = ?", id).Error
}

// --- categories ---

func (r *Repository) ListCategories(ctx context.Context) ([]models.ItemCategory, error) {
	var categories []models.ItemCategory
	if err := r.db.WithContext(ctx).Order("item_ctgry_id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) FindCategoryByID(ctx context.Context, id int64) (*models.ItemCategory, error) {
	var category models.ItemCategory
	if err := r.db.WithContext(ctx).First(&category, "item_ctgry_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *models.ItemCategory) (*models.ItemCategory, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *Repository) SaveCategory(ctx context.Context, category *models.ItemCategory) (*models.ItemCategory, error) {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.ItemCategory{}, "item_ctgry_id = ?", id).Error
}

// --- suppliers ---

func (r *Repository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.WithContext(ctx).Order("supplier_id").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *Repository) FindSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "supplier_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *Repository) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *Repository) SaveSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := r.db.WithContext(ctx).Save(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *Repository) DeleteSupplier(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Supplier{}, "supplier_id = ?", id).Error
}

// --- stock in ---

func (r *Repository) ListStockIns(ctx context.Context) ([]models.StockIn, error) {
	var records []models.StockIn
	if err := r.db.WithContext(ctx).Order("stock_in_id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) FindStockInByID(ctx context.Context, id int64) (*models.StockIn, error) {
	var record models.StockIn
	if err := r.db.WithContext(ctx).First(&record, "stock_in_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) ListStockInsByItem(ctx context.Context, itemID int64) ([]models.StockIn, error) {
	var records []models.StockIn
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("date_added").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) ListStockInsByItemAndRange(ctx context.Context, itemID int64, start, end types.Date) ([]models.StockIn, error) {
	var records []models.StockIn
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND date_added >= ? AND date_added <= ?", itemID, start, end).
		Order("date_added").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) ListStockInsByRange(ctx context.Context, start, end types.Date) ([]models.StockIn, error) {
	var records []models.StockIn
	if err := r.db.WithContext(ctx).
		Where("date_added >= ? AND date_added <= ?", start, end).
		Order("date_added").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) CreateStockIn(ctx context.Context, record *models.StockIn) (*models.StockIn, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) SaveStockIn(ctx context.Context, record *models.StockIn) (*models.StockIn, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) DeleteStockIn(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.StockIn{}, "stock_in_id = ?", id).Error
}

// --- stock out ---

func (r *Repository) ListStockOuts(ctx context.Context) ([]models.StockOut, error) {
	var records []models.StockOut
	if err := r.db.WithContext(ctx).Order("stock_out_id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) FindStockOutByID(ctx context.Context, id int64) (*models.StockOut, error) {
	var record models.StockOut
	if err := r.db.WithContext(ctx).First(&record, "stock_out_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) ListStockOutsByRange(ctx context.Context, start, end types.Date) ([]models.StockOut, error) {
	var records []models.StockOut
	if err := r.db.WithContext(ctx).
		Where("date_used >= ? AND date_used <= ?", start, end).
		Order("date_used").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) CreateStockOut(ctx context.Context, record *models.StockOut) (*models.StockOut, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) SaveStockOut(ctx context.Context, record *models.StockOut) (*models.StockOut, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) DeleteStockOut(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.StockOut{}, "stock_out_id = ?", id).Error
}

// --- restocks ---

func (r *Repository) ListRestocks(ctx context.Context) ([]models.Restock, error) {
	var records []models.Restock
	if err := r.db.WithContext(ctx).Order("restock_id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) FindRestockByID(ctx context.Context, id int64) (*models.Restock, error) {
	var record models.Restock
	if err := r.db.WithContext(ctx).First(&record, "restock_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) CreateRestock(ctx context.Context, record *models.Restock) (*models.Restock, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) SaveRestock(ctx context.Context, record *models.Restock) (*models.Restock, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *Repository) DeleteRestock(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Restock{}, "restock_id = ?", id).Error
}
