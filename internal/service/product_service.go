package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	catalogCacheTTL = 5 * time.Minute
	defaultPageSize = 20
	maxPageSize     = 100
)

type IProductService interface {
	List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error)
	ShowBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewProductService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache) IProductService {
	return &productService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:                   p.Id,
		Slug:                 p.Slug,
		Name:                 p.Name,
		Type:                 string(p.Type),
		Description:          p.Description,
		Price:                p.Price,
		InStock:              p.InStock,
		SubscriptionEligible: p.SubscriptionEligible,
		CategoryId:           p.CategoryId,
		CreatedAt:            p.CreatedAt,
	}
}

func (s *productService) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	cacheKey := fmt.Sprintf("catalog:%s:%d:%d", req.Type, page, pageSize)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.ListProductsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ActiveProducts{}}
	countSpecs := []specification.Specification{specification.ActiveProducts{}}
	if req.Type != "" {
		specs = append(specs, specification.Filter("type", req.Type))
		countSpecs = append(countSpecs, specification.Filter("type", req.Type))
	}
	specs = append(specs,
		specification.OrderBy{Field: "name"},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	total, err := uow.ProductRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListProductsResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, p := range products {
		res.Products = append(res.Products, *toProductResponse(p))
	}

	s.cache.Set(cacheKey, res, catalogCacheTTL)
	return res, nil
}

func (s *productService) ShowBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	cacheKey := "product:" + slug
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.ProductResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.ActiveProducts{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	res := toProductResponse(product)
	s.cache.Set(cacheKey, res, catalogCacheTTL)
	return res, nil
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProductRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("slug already in use")
	}

	product := &entity.Product{
		Id:                   uuid.New(),
		Slug:                 req.Slug,
		Name:                 req.Name,
		Type:                 entity.ProductType(req.Type),
		Description:          req.Description,
		Price:                req.Price,
		IsActive:             true,
		InStock:              req.InStock,
		SubscriptionEligible: req.SubscriptionEligible,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}

	s.cache.Flush()
	return toProductResponse(product), nil
}

func (s *productService) Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product not found")
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.IsActive = req.IsActive
	product.InStock = req.InStock
	product.SubscriptionEligible = req.SubscriptionEligible
	product.UpdatedAt = time.Now()

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	s.cache.Flush()
	return toProductResponse(product), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Flush()
	return nil
}
