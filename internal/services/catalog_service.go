package services

import (
	"context"
	"encoding/json"

	"aistore/internal/models/db_models"
	"aistore/internal/models/request_models"
	"aistore/internal/repositories"
	"aistore/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, filter repositories.ProductFilter) ([]db_models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*db_models.Product, error)
	ListCategories(ctx context.Context) ([]db_models.Category, error)

	// Admin catalog mutations.
	CreateProduct(ctx context.Context, request request_models.CreateProductRequest) (*db_models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, request request_models.UpdateProductRequest) (*db_models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListAllCategories(ctx context.Context) ([]db_models.Category, error)
	CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*db_models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, request request_models.UpdateCategoryRequest) (*db_models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) CatalogServiceInterface {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repositories.ProductFilter) ([]db_models.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*db_models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, request request_models.CreateProductRequest) (*db_models.Product, error) {
	product := &db_models.Product{
		Name:         request.Name,
		Description:  request.Description,
		Price:        request.Price,
		MonthlyPrice: request.MonthlyPrice,
		YearlyPrice:  request.YearlyPrice,
		ImageURL:     request.ImageURL,
		DemoURL:      request.DemoURL,
		IsActive:     true,
		TrialDays:    request.TrialDays,
	}
	if request.CategoryID != nil {
		categoryID, err := uuid.Parse(*request.CategoryID)
		if err != nil {
			return nil, utils.ErrCategoryNotFound
		}
		product.CategoryID = &categoryID
	}
	if request.IsActive != nil {
		product.IsActive = *request.IsActive
	}
	if request.SubscriptionRequired != nil {
		product.SubscriptionRequired = *request.SubscriptionRequired
	} else {
		product.SubscriptionRequired = true
	}
	if request.Features != nil {
		product.Features = featuresJSON(request.Features)
	}

	if err := s.productRepo.Insert(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, request request_models.UpdateProductRequest) (*db_models.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrProductNotFound
	}

	patch := map[string]interface{}{}
	if request.Name != nil {
		patch["name"] = *request.Name
	}
	if request.Description != nil {
		patch["description"] = *request.Description
	}
	if request.CategoryID != nil {
		categoryID, err := uuid.Parse(*request.CategoryID)
		if err != nil {
			return nil, utils.ErrCategoryNotFound
		}
		patch["category_id"] = categoryID
	}
	if request.Price != nil {
		patch["price"] = *request.Price
	}
	if request.MonthlyPrice != nil {
		patch["monthly_price"] = *request.MonthlyPrice
	}
	if request.YearlyPrice != nil {
		patch["yearly_price"] = *request.YearlyPrice
	}
	if request.Features != nil {
		patch["features"] = featuresJSON(request.Features)
	}
	if request.ImageURL != nil {
		patch["image_url"] = *request.ImageURL
	}
	if request.DemoURL != nil {
		patch["demo_url"] = *request.DemoURL
	}
	if request.IsActive != nil {
		patch["is_active"] = *request.IsActive
	}
	if request.SubscriptionRequired != nil {
		patch["subscription_required"] = *request.SubscriptionRequired
	}
	if request.TrialDays != nil {
		patch["trial_days"] = *request.TrialDays
	}

	if len(patch) > 0 {
		if err := s.productRepo.Update(ctx, id, patch); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return s.GetProduct(ctx, id)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrProductNotFound
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) ListAllCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*db_models.Category, error) {
	category := &db_models.Category{
		Name:        request.Name,
		Slug:        request.Slug,
		Description: request.Description,
		ImageURL:    request.ImageURL,
		IsActive:    true,
	}
	if request.IsActive != nil {
		category.IsActive = *request.IsActive
	}
	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, request request_models.UpdateCategoryRequest) (*db_models.Category, error) {
	existing, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrCategoryNotFound
	}

	patch := map[string]interface{}{}
	if request.Name != nil {
		patch["name"] = *request.Name
	}
	if request.Slug != nil {
		patch["slug"] = *request.Slug
	}
	if request.Description != nil {
		patch["description"] = *request.Description
	}
	if request.ImageURL != nil {
		patch["image_url"] = *request.ImageURL
	}
	if request.IsActive != nil {
		patch["is_active"] = *request.IsActive
	}

	if len(patch) > 0 {
		if err := s.categoryRepo.Update(ctx, id, patch); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return s.categoryRepo.FindByID(ctx, id)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	existing, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrCategoryNotFound
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func featuresJSON(features []string) datatypes.JSON {
	b, _ := json.Marshal(features)
	return b
}
