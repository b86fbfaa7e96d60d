package usecase

import (
	"context"

	"pixorva/internal/domain/entity"
	"pixorva/internal/domain/service"
)

// VerificationPageState selects what the verification page shows.
type VerificationPageState string

const (
	VerificationPageForm    VerificationPageState = "form"
	VerificationPagePending VerificationPageState = "pending"
)

// SubmitVerificationInput carries the two proof documents.
type SubmitVerificationInput struct {
	Principal     *entity.Principal
	GSTProof      *service.MediaFile
	BusinessProof *service.MediaFile
}

// VerificationOutput reports the verification page state.
type VerificationOutput struct {
	State     VerificationPageState
	Documents *entity.VerificationDocuments
}

// VerificationUsecase defines the seller verification workflow.
type VerificationUsecase interface {
	// Status reads verificationStatus once to choose between the form and the pending notice.
	Status(ctx context.Context, principal *entity.Principal) (*VerificationOutput, error)

	// Submit uploads both documents concurrently, then commits them in one profile update.
	Submit(ctx context.Context, input *SubmitVerificationInput) (*VerificationOutput, error)
}
