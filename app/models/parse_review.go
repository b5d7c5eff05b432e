package models

import (
	"time"
)

// ParseReview is a low-confidence parse queued for manual review. The
// surrounding orchestration (or an operator) resolves the queue entry;
// approved corrections can feed learned aliases.
type ParseReview struct {
	Fingerprint    string         `bson:"fingerprint" json:"fingerprint"`
	RawMessage     string         `bson:"raw_message" json:"raw_message"`
	NormalizedText string         `bson:"normalized_text" json:"normalized_text"`
	AutoResult     ParsedMessage  `bson:"auto_result" json:"auto_result"`
	Confidence     float64        `bson:"confidence" json:"confidence"`
	Status         string         `bson:"status" json:"status"`
	ManualResult   *ParsedMessage `bson:"manual_result,omitempty" json:"manual_result,omitempty"`
	ReviewerID     *string        `bson:"reviewer_id,omitempty" json:"reviewer_id,omitempty"`
	RejectReason   string         `bson:"reject_reason,omitempty" json:"reject_reason,omitempty"`
	ReviewedAt     *time.Time     `bson:"reviewed_at,omitempty" json:"reviewed_at,omitempty"`
	CreatedAt      time.Time      `bson:"created_at" json:"created_at"`
}

// Review status constants
const (
	ReviewStatusPending  = "pending"
	ReviewStatusInReview = "in_review"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// NewParseReview queues a parse result for review.
func NewParseReview(result *ParsedMessage) *ParseReview {
	return &ParseReview{
		Fingerprint:    result.Fingerprint,
		RawMessage:     result.Raw,
		NormalizedText: result.NormalizedText,
		AutoResult:     *result,
		Confidence:     result.Confidence.Score,
		Status:         ReviewStatusPending,
		CreatedAt:      time.Now(),
	}
}

// IsValidStatus checks status against the known constants.
func (pr *ParseReview) IsValidStatus() bool {
	switch pr.Status {
	case ReviewStatusPending, ReviewStatusInReview, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// Approve accepts the automatic result.
func (pr *ParseReview) Approve(reviewerID string) {
	pr.Status = ReviewStatusApproved
	pr.ReviewerID = &reviewerID
	now := time.Now()
	pr.ReviewedAt = &now
}

// Reject discards the automatic result.
func (pr *ParseReview) Reject(reviewerID string) {
	pr.Status = ReviewStatusRejected
	pr.ReviewerID = &reviewerID
	now := time.Now()
	pr.ReviewedAt = &now
}

// SetManualResult records an operator-corrected result and approves.
func (pr *ParseReview) SetManualResult(result ParsedMessage, reviewerID string) {
	pr.ManualResult = &result
	pr.Status = ReviewStatusApproved
	pr.ReviewerID = &reviewerID
	now := time.Now()
	pr.ReviewedAt = &now
}

// IsPending reports whether the entry still waits for review.
func (pr *ParseReview) IsPending() bool {
	return pr.Status == ReviewStatusPending
}

// IsCompleted reports whether the review reached a terminal status.
func (pr *ParseReview) IsCompleted() bool {
	return pr.Status == ReviewStatusApproved || pr.Status == ReviewStatusRejected
}
