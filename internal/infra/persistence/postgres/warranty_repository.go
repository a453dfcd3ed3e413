package postgres

import (
	"context"
	"strings"
	"time"

	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/repository"
	"ewarrants/internal/errors"
	"ewarrants/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const sqlDateLayout = "2006-01-02"

// expiryDateExpr derives the expiry date in SQL. date + interval clamps to the
// last day of the target month, matching expiry.ExpiryDate.
const expiryDateExpr = "(purchase_date + make_interval(months => warranty_length_months))::date"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// warrantyRepository implements repository.WarrantyRepository using GORM.
// Every statement is constrained by owner_id.
type warrantyRepository struct {
	db *gorm.DB
}

// NewWarrantyRepository is the constructor for warrantyRepository.
func NewWarrantyRepository(db *gorm.DB) repository.WarrantyRepository {
	return &warrantyRepository{db: db}
}

func (repo *warrantyRepository) Create(ctx context.Context, ownerID uuid.UUID, warranty *entity.Warranty) error {
	if warranty.ID == uuid.Nil {
		warranty.ID = uuid.New()
	}
	warranty.OwnerID = ownerID
	now := time.Now().UTC()
	warranty.CreatedAt = now
	warranty.UpdatedAt = now

	if err := repo.db.WithContext(ctx).Create(fromWarrantyDomain(warranty)).Error; err != nil {
		return translateWarrantyWriteError(err, "failed to create warranty")
	}

	return nil
}

func (repo *warrantyRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Warranty, error) {
	var warrantyM model.WarrantyModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&warrantyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWarrantyNotFound
		}

		return nil, errors.Wrap(err, "failed to find warranty by id")
	}

	return toWarrantyDomain(&warrantyM), nil
}

// Update never changes id, owner_id or created_at.
func (repo *warrantyRepository) Update(ctx context.Context, ownerID uuid.UUID, warranty *entity.Warranty) error {
	warranty.OwnerID = ownerID
	warranty.UpdatedAt = time.Now().UTC()
	warrantyM := fromWarrantyDomain(warranty)

	result := repo.db.WithContext(ctx).
		Model(&model.WarrantyModel{}).
		Where("id = ? AND owner_id = ?", warranty.ID, ownerID).
		Updates(map[string]any{
			"product_name":           warrantyM.ProductName,
			"purchase_date":          warrantyM.PurchaseDate,
			"warranty_length_months": warrantyM.WarrantyLengthMonths,
			"category":               warrantyM.Category,
			"description":            warrantyM.Description,
			"receipts":               warrantyM.Receipts,
			"product_image_url":      warrantyM.ProductImageURL,
			"updated_at":             warrantyM.UpdatedAt,
		})
	if err := result.Error; err != nil {
		return translateWarrantyWriteError(err, "failed to update warranty")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWarrantyNotFound
	}

	return nil
}

func (repo *warrantyRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.WarrantyModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete warranty")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWarrantyNotFound
	}

	return nil
}

func (repo *warrantyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, opts repository.ListOptions) ([]*entity.Warranty, error) {
	tx := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if opts.UpdatedAfter != nil {
		tx = tx.Where("updated_at > ?", *opts.UpdatedAfter)
	}
	if category := strings.TrimSpace(opts.Category); category != "" {
		tx = tx.Where("category ILIKE ?", "%"+likeEscaper.Replace(category)+"%")
	}
	if opts.SortAscending {
		tx = tx.Order("purchase_date ASC")
	} else {
		tx = tx.Order("purchase_date DESC")
	}

	var rows []*model.WarrantyModel
	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list warranties")
	}

	return toWarrantyDomains(rows), nil
}

func (repo *warrantyRepository) FindExpiringWithin(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.Warranty, error) {
	var rows []*model.WarrantyModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Where(expiryDateExpr+" BETWEEN ?::date AND ?::date", from.Format(sqlDateLayout), to.Format(sqlDateLayout)).
		Order(expiryDateExpr).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find expiring warranties")
	}

	return toWarrantyDomains(rows), nil
}

func (repo *warrantyRepository) FindExpiringOn(ctx context.Context, ownerID uuid.UUID, day time.Time) ([]*entity.Warranty, error) {
	return repo.FindExpiringWithin(ctx, ownerID, day, day)
}

func (repo *warrantyRepository) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.WarrantyModel{})
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete warranties of owner")
	}

	return result.RowsAffected, nil
}

func translateWarrantyWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrUserNotFound.WrapMessage("owner does not exist")
	case isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("invalid warranty fields")
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrConflict.WrapMessage("warranty already exists")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toWarrantyDomains(rows []*model.WarrantyModel) []*entity.Warranty {
	warranties := make([]*entity.Warranty, 0, len(rows))
	for _, row := range rows {
		warranties = append(warranties, toWarrantyDomain(row))
	}

	return warranties
}

// toWarrantyDomain converts a GORM WarrantyModel to a domain Warranty entity.
func toWarrantyDomain(data *model.WarrantyModel) *entity.Warranty {
	if data == nil {
		return nil
	}

	receipts := make([]entity.Receipt, 0, len(data.Receipts))
	for _, r := range data.Receipts {
		receipts = append(receipts, entity.Receipt{Name: r.Name, URL: r.URL, FileType: r.FileType})
	}

	y, m, d := time.Time(data.PurchaseDate).Date()

	return &entity.Warranty{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		ProductName:          data.ProductName,
		PurchaseDate:         time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		WarrantyLengthMonths: data.WarrantyLengthMonths,
		Category:             data.Category,
		Description:          data.Description,
		Receipts:             receipts,
		ProductImageURL:      data.ProductImageURL,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromWarrantyDomain converts a domain Warranty entity to a GORM WarrantyModel.
func fromWarrantyDomain(data *entity.Warranty) *model.WarrantyModel {
	if data == nil {
		return nil
	}

	receipts := make(datatypes.JSONSlice[model.ReceiptItem], 0, len(data.Receipts))
	for _, r := range data.Receipts {
		receipts = append(receipts, model.ReceiptItem{Name: r.Name, URL: r.URL, FileType: r.FileType})
	}

	return &model.WarrantyModel{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		ProductName:          data.ProductName,
		PurchaseDate:         datatypes.Date(data.PurchaseDate),
		WarrantyLengthMonths: data.WarrantyLengthMonths,
		Category:             data.Category,
		Description:          data.Description,
		Receipts:             receipts,
		ProductImageURL:      data.ProductImageURL,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
