package model

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "Pending"
	ReviewStatusApproved ReviewStatus = "Approved"
	ReviewStatusRejected ReviewStatus = "Rejected"
)

// Valid reports whether s is a known review status.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer review of a product. ProductID is a weak reference.
type Review struct {
	ID           string       `json:"id"`
	ProductID    string       `json:"productId"`
	CustomerName string       `json:"customerName"`
	Rating       int          `json:"rating"`
	Comment      string       `json:"comment"`
	Date         string       `json:"date"`
	Status       ReviewStatus `json:"status"`
}

// ReviewFilter narrows a review listing. Zero values match everything.
type ReviewFilter struct {
	ProductID string
	Status    ReviewStatus
}

// RatingSummary aggregates the approved reviews of a product.
type RatingSummary struct {
	ProductID string  `json:"productId"`
	Count     int     `json:"count"`
	Average   float64 `json:"average"`
}
