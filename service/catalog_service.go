package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lender-match/domain"
	"lender-match/repository"

	"go.uber.org/zap"
)

// CatalogService fetches the lender-product catalog from the staff backend,
// normalizes it, and keeps the canonical list in the cache for cacheTTL.
// It satisfies repository.ProductCatalog.
type CatalogService struct {
	endpointURL string
	cache       repository.CacheRepository
	cacheTTL    time.Duration
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewCatalogService creates a catalog service against the given endpoint URL.
func NewCatalogService(
	endpointURL string,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		endpointURL: endpointURL,
		cache:       cache,
		cacheTTL:    cacheTTL,
		httpClient: &http.Client{
			Timeout: catalogRequestTimeout,
		},
		logger: logger,
	}
}

// Products returns the cached catalog when fresh, fetching otherwise.
func (s *CatalogService) Products(ctx context.Context) ([]domain.LenderProduct, error) {
	if cached, ok := s.cache.Get(ctx, catalogCacheKey); ok {
		var products []domain.LenderProduct
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
		s.logger.Warn("discarding unreadable catalog cache entry")
	}
	return s.Refresh(ctx)
}

// Refresh fetches the catalog from the staff backend and repopulates the
// cache. Cache write failures are logged and non-fatal.
func (s *CatalogService) Refresh(ctx context.Context) ([]domain.LenderProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpointURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build lender products request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch lender products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("lender products endpoint returned status %d: %s",
			resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read lender products response: %w", err)
	}

	products, err := DecodeCatalog(body)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		if err := s.cache.Set(ctx, catalogCacheKey, string(data), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache product catalog", zap.Error(err))
		}
	}

	s.logger.Info("refreshed product catalog", zap.Int("products", len(products)))
	return products, nil
}
