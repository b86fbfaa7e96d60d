// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pixorva/internal/domain/entity"
)

// ProfileRepository defines the operations on the per-principal profile record.
type ProfileRepository interface {
	// Get performs a one-time read. A missing record returns domainerrors.ErrProfileNotFound.
	Get(ctx context.Context, uid string) (*entity.Profile, error)

	// Create writes the signup record keyed by profile.UID.
	Create(ctx context.Context, profile *entity.Profile) error

	// SubmitVerification sets verificationStatus=pending, documents and submittedAt in one update.
	SubmitVerification(ctx context.Context, uid string, documents entity.VerificationDocuments) error

	// Watch subscribes to live updates of one record. onChange receives the initial state and
	// every later change; onError receives read failures. The returned stop func is idempotent.
	Watch(ctx context.Context, uid string, onChange func(entity.ProfileState), onError func(error)) (stop func())
}
