package v1

import "time"

// SignInRequest is the profile a browser reports after the identity provider
// has signed the user in. The uid itself comes from the trusted upstream header.
type SignInRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	ProviderID  string `json:"provider_id"`
}

// SignInAttempt records a dashboard sign-in. One attempt is kept per uid;
// repeated sign-ins refresh LastSignInAt.
type SignInAttempt struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	ProviderID   string    `json:"provider_id"`
	FirstSeenAt  time.Time `json:"first_seen_at"`
	LastSignInAt time.Time `json:"last_sign_in_at"`

	// Approved is filled in on listing from the employees table.
	Approved bool `json:"approved"`
}

// Employee is an approved dashboard user.
type Employee struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	ApprovedAt  time.Time `json:"approved_at"`
	ApprovedBy  string    `json:"approved_by,omitempty"`
}

// SignInResult is returned by the sign-in endpoint.
type SignInResult struct {
	Status   string    `json:"status"`
	Employee *Employee `json:"employee,omitempty"`
}

// Sign-in statuses.
const (
	SignInApproved        = "approved"
	SignInPendingApproval = "pending_approval"
)

// ApprovalResult is returned after toggling an employee's approval.
type ApprovalResult struct {
	UID      string `json:"uid"`
	Approved bool   `json:"approved"`
}
