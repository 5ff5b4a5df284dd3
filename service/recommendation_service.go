package service

import (
	"context"
	"fmt"

	"lender-match/domain"
	"lender-match/repository"

	"go.uber.org/zap"
)

// RecommendationService combines the product catalog with the pure
// filter/ranker. The catalog load is the only fallible step; the ranking
// itself never errors.
type RecommendationService struct {
	catalog repository.ProductCatalog
	logger  *zap.Logger
}

func NewRecommendationService(catalog repository.ProductCatalog, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{catalog: catalog, logger: logger}
}

// Recommend returns the eligible products for the given form inputs, ordered
// by descending match score.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	form domain.FormInputs,
) ([]domain.RankedProduct, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load product catalog: %w", err)
	}

	ranked := FilterAndRankProducts(products, form)
	s.logger.Debug("ranked lender products",
		zap.Int("catalog", len(products)),
		zap.Int("eligible", len(ranked)),
		zap.String("lookingFor", form.LookingFor),
	)
	return ranked, nil
}
