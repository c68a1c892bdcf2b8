package entity

import (
	"errors"
	"time"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Account is keyed by its user-chosen handle; the handle and the
// verification identifier are write-once.
type Account struct {
	Handle         string    `json:"handle"`
	DisplayName    string    `json:"display_name"`
	Name           string    `json:"name"`
	VerificationID string    `json:"verification_id"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"` // "M" / "F", externally validated
	Role           Role      `json:"role"`
	PasswordHash   string    `json:"password_hash"`
	Favorable      int       `json:"favorable"`
	Unfavorable    int       `json:"unfavorable"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AccountSpec carries the validated values an account is created from.
type AccountSpec struct {
	Handle         string
	DisplayName    string
	Name           string
	VerificationID string
	Age            int
	Gender         string
	Role           Role
	PasswordHash   string
}

func NewAccount(spec AccountSpec, now time.Time) (*Account, error) {
	if spec.Handle == "" {
		return nil, errors.New("handle cannot be empty")
	}
	if spec.PasswordHash == "" {
		return nil, errors.New("password hash cannot be empty")
	}
	role := spec.Role
	if role == "" {
		role = RoleMember
	}
	return &Account{
		Handle:         spec.Handle,
		DisplayName:    spec.DisplayName,
		Name:           spec.Name,
		VerificationID: spec.VerificationID,
		Age:            spec.Age,
		Gender:         spec.Gender,
		Role:           role,
		PasswordHash:   spec.PasswordHash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (a *Account) IsAdmin() bool { return a.Role == RoleAdmin }

// AddFavorable and AddUnfavorable are the only mutations of the reputation
// counters; both are invoked exclusively from a completed-trade evaluation.
func (a *Account) AddFavorable(now time.Time) {
	a.Favorable++
	a.UpdatedAt = now
}

func (a *Account) AddUnfavorable(now time.Time) {
	a.Unfavorable++
	a.UpdatedAt = now
}
