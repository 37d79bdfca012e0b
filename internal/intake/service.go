// Package intake accepts quote requests and reviews from the public site.
package intake

import (
	"time"

	"github.com/crystal-vistas/vistas-ops/internal/core/storage"
	"github.com/crystal-vistas/vistas-ops/internal/notify"
	"github.com/gin-gonic/gin"
)

// ReviewPolicy decides which reviews are sent on to the public review page.
type ReviewPolicy struct {
	// PublicThreshold is the lowest rating that gets RedirectURL.
	PublicThreshold int
	RedirectURL     string
}

type Service struct {
	quotes           storage.QuoteStore
	reviews          storage.ReviewStore
	notifier         notify.Notifier
	policy           ReviewPolicy
	maxBodySizeBytes int64
	now              func() time.Time
}

func NewService(quotes storage.QuoteStore, reviews storage.ReviewStore, notifier notify.Notifier, policy ReviewPolicy, maxBodySizeMB int) *Service {
	if quotes == nil {
		panic("intake: quote store must not be nil")
	}
	if reviews == nil {
		panic("intake: review store must not be nil")
	}
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	return &Service{
		quotes:           quotes,
		reviews:          reviews,
		notifier:         notifier,
		policy:           policy,
		maxBodySizeBytes: int64(maxBodySizeMB) * 1024 * 1024,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// RegisterPublicRoutes registers the forms the public site posts to.
func (s *Service) RegisterPublicRoutes(r gin.IRouter) {
	r.POST("/v1/quotes", s.SubmitQuoteHandler)
	r.POST("/v1/reviews", s.SubmitReviewHandler)
	r.GET("/v1/reviews/summary", s.ReviewSummaryHandler)
}

// RegisterRoutes registers the employee listings.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/quotes", s.ListQuotesHandler)
	r.GET("/v1/reviews", s.ListReviewsHandler)
}
