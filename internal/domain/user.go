package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleAdmin     = "ADMIN"
	RoleCandidate = "CANDIDATE"
	RoleCompany   = "COMPANY"
)

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	PasswordHash   *string    `json:"passwordHash,omitempty"`
	Role           string     `json:"role"`
	LinkedEntityID *string    `json:"linkedEntityId"`
	Status         string     `json:"status"`
	IsDeleted      bool       `json:"isDeleted"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ListActive(ctx context.Context, page, size int) ([]User, int64, error)
	ListAll(ctx context.Context, page, size int) ([]User, int64, error)
	Upsert(ctx context.Context, user *User) error
	SoftDelete(ctx context.Context, id string) (*User, error)
}

type UserUsecase interface {
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context, page, size int, includeDeleted bool) (Page[User], error)
	UpsertUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id string) (*User, error)
}
