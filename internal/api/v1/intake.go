package v1

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// QuoteRequest is a free-quote form submitted from the public site.
type QuoteRequest struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	ServiceType string    `json:"service_type"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Validate ensures the request carries enough to contact the customer.
func (q *QuoteRequest) Validate() error {
	if strings.TrimSpace(q.FirstName) == "" {
		return fmt.Errorf("first_name is required")
	}
	if strings.TrimSpace(q.LastName) == "" {
		return fmt.Errorf("last_name is required")
	}
	if q.Email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(q.Email); err != nil {
		return fmt.Errorf("email is not a valid address")
	}
	if strings.TrimSpace(q.ServiceType) == "" {
		return fmt.Errorf("service_type is required")
	}
	return nil
}

// Review rating bounds and the highest rating that keeps written feedback.
const (
	MinRating         = 1
	MaxRating         = 5
	FeedbackMaxRating = 3
	anonymousReviewer = "Anonymous"
)

// Review is a star rating left on the public site. Written feedback is only
// collected for low ratings; high ratings are sent on to the public review page.
type Review struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the rating range.
func (r *Review) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// Normalize drops name and message above FeedbackMaxRating and fills in an
// anonymous name for feedback submitted without one.
func (r *Review) Normalize() {
	if r.Rating > FeedbackMaxRating {
		r.Name = ""
		r.Message = ""
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		r.Name = anonymousReviewer
	}
}

// ReviewSubmission is the response to a submitted review.
type ReviewSubmission struct {
	Review      *Review `json:"review"`
	RedirectURL string  `json:"redirect_url,omitempty"`
}

// ReviewSummary is the average-rating widget.
type ReviewSummary struct {
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"distribution"`
}
