package intake

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	v1 "github.com/crystal-vistas/vistas-ops/internal/api/v1"
	httperr "github.com/crystal-vistas/vistas-ops/internal/core/errors"
	"github.com/crystal-vistas/vistas-ops/internal/notify"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// SubmitQuoteHandler handles POST /v1/quotes.
func (s *Service) SubmitQuoteHandler(c *gin.Context) {
	var q v1.QuoteRequest
	if apiErr := httperr.BindJSON(c, s.maxBodySizeBytes, &q); apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}
	if err := q.Validate(); err != nil {
		slog.Warn("[Intake] Quote request validation failed", "error", err)
		httperr.Write(c, httperr.Invalid(err.Error()))
		return
	}

	q.ID = uuid.NewString()
	q.SubmittedAt = s.now()

	if err := s.quotes.SaveQuoteRequest(c.Request.Context(), &q); err != nil {
		httperr.Write(c, httperr.FromStore(err, "quote request"))
		return
	}

	slog.Info("[Intake] Received quote request", "id", q.ID, "service_type", q.ServiceType)
	notify.Send(c.Request.Context(), s.notifier, quoteMessage(&q))

	c.JSON(http.StatusCreated, &q)
}

// SubmitReviewHandler handles POST /v1/reviews. High ratings come back with the
// public review page so the site can send the customer on.
func (s *Service) SubmitReviewHandler(c *gin.Context) {
	var r v1.Review
	if apiErr := httperr.BindJSON(c, s.maxBodySizeBytes, &r); apiErr != nil {
		httperr.Write(c, apiErr)
		return
	}
	if err := r.Validate(); err != nil {
		slog.Warn("[Intake] Review validation failed", "error", err)
		httperr.Write(c, httperr.Invalid(err.Error()))
		return
	}

	r.Normalize()
	r.ID = uuid.NewString()
	r.CreatedAt = s.now()

	if err := s.reviews.SaveReview(c.Request.Context(), &r); err != nil {
		httperr.Write(c, httperr.FromStore(err, "review"))
		return
	}

	slog.Info("[Intake] Received review", "id", r.ID, "rating", r.Rating)
	notify.Send(c.Request.Context(), s.notifier, reviewMessage(&r))

	resp := v1.ReviewSubmission{Review: &r}
	if s.policy.RedirectURL != "" && r.Rating >= s.policy.PublicThreshold {
		resp.RedirectURL = s.policy.RedirectURL
	}
	c.JSON(http.StatusCreated, resp)
}

// ReviewSummaryHandler handles GET /v1/reviews/summary.
func (s *Service) ReviewSummaryHandler(c *gin.Context) {
	reviews, err := s.reviews.ListReviews(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, "review"))
		return
	}
	c.JSON(http.StatusOK, summarize(reviews))
}

func (s *Service) ListQuotesHandler(c *gin.Context) {
	quotes, err := s.quotes.ListQuoteRequests(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, "quote request"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

func (s *Service) ListReviewsHandler(c *gin.Context) {
	reviews, err := s.reviews.ListReviews(c.Request.Context())
	if err != nil {
		httperr.Write(c, httperr.FromStore(err, "review"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func summarize(reviews []*v1.Review) v1.ReviewSummary {
	sum := v1.ReviewSummary{Distribution: make(map[int]int, v1.MaxRating)}
	for r := v1.MinRating; r <= v1.MaxRating; r++ {
		sum.Distribution[r] = 0
	}
	if len(reviews) == 0 {
		return sum
	}

	ratings := make([]float64, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, float64(r.Rating))
		sum.Distribution[r.Rating]++
	}
	sum.Count = len(reviews)
	sum.Average = stat.Mean(ratings, nil)
	return sum
}

func quoteMessage(q *v1.QuoteRequest) notify.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s %s\n", q.FirstName, q.LastName)
	fmt.Fprintf(&b, "Email: %s\n", q.Email)
	if q.PhoneNumber != "" {
		fmt.Fprintf(&b, "Phone: %s\n", q.PhoneNumber)
	}
	fmt.Fprintf(&b, "Service: %s\n", q.ServiceType)
	if q.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", q.Message)
	}
	return notify.Message{
		Subject: fmt.Sprintf("New quote request from %s %s", q.FirstName, q.LastName),
		Body:    b.String(),
	}
}

func reviewMessage(r *v1.Review) notify.Message {
	body := fmt.Sprintf("Rating: %d/%d\n", r.Rating, v1.MaxRating)
	if r.Message != "" {
		body += fmt.Sprintf("From: %s\n\n%s\n", r.Name, r.Message)
	}
	return notify.Message{
		Subject: fmt.Sprintf("New %d-star review", r.Rating),
		Body:    body,
	}
}
