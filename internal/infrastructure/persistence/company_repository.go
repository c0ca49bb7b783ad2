package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCompanyRepository implements partner.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, partner.ErrCompanyNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns one page of companies and the total count
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Company, int64, error) {
	filter = filter.Normalize()
	query := r.db.WithContext(ctx).Model(&models.CompanyModel{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companyModels []models.CompanyModel
	if err := query.
		Order(orderClause(filter, CompanySortFields, "name")).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&companyModels).Error; err != nil {
		return nil, 0, err
	}

	companies := make([]*partner.Company, len(companyModels))
	for i := range companyModels {
		companies[i] = companyModels[i].ToDomain()
	}
	return companies, total, nil
}

// Save inserts or fully updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *partner.Company) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(models.CompanyModelFromDomain(company)).Error
}

var _ partner.CompanyRepository = (*GormCompanyRepository)(nil)
