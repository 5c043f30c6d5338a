package mock

import (
	"context"

	"gitwrapped/internal/app"
)

// Service mocks the stats service consumed by the http api.
type Service struct {
	YearInReviewFunc func(ctx context.Context, login string, token string, ownProfile bool) (app.Stats, error)
}

// YearInReview returns fake stats data.
func (s *Service) YearInReview(ctx context.Context, login string, token string, ownProfile bool) (app.Stats, error) {
	if s.YearInReviewFunc != nil {
		return s.YearInReviewFunc(ctx, login, token, ownProfile)
	}

	return app.Stats{}, nil
}
