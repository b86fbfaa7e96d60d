// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const defaultWatchPollInterval = 5 * time.Second

// RepositoryParams holds dependencies for the PostgreSQL repositories, injected by Fx.
type RepositoryParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// profileRepository implements repository.ProfileRepository using GORM.
type profileRepository struct {
	db  *gorm.DB
	hub *watchHub
}

// NewProfileRepository is the constructor for profileRepository.
// Live updates are served by an in-process hub that re-reads the row on local writes
// and polls for changes made by other writers.
func NewProfileRepository(params RepositoryParams) repository.ProfileRepository {
	repo := &profileRepository{db: params.DB}
	repo.hub = newWatchHub(repo.Get, defaultWatchPollInterval, params.Logger)

	return repo
}

func (repo *profileRepository) Get(ctx context.Context, uid string) (*entity.Profile, error) {
	var m ProfileModel
	if err := repo.db.WithContext(ctx).Where("uid = ?", uid).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return toProfileDomain(&m), nil
}

// Create upserts the signup record, matching a keyed document write.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	m := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Save(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateAccountFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	repo.hub.notify(profile.UID)

	return nil
}

func (repo *profileRepository) SubmitVerification(ctx context.Context, uid string, documents entity.VerificationDocuments) error {
	result := repo.db.WithContext(ctx).Model(&ProfileModel{}).
		Where("uid = ?", uid).
		Updates(map[string]any{
			"verification_status": string(entity.VerificationStatusPending),
			"gst_proof_url":       documents.GSTProofURL,
			"business_proof_url":  documents.BusinessProofURL,
			"submitted_at":        gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to submit verification")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProfileNotFound
	}

	repo.hub.notify(uid)

	return nil
}

func (repo *profileRepository) Watch(ctx context.Context, uid string, onChange func(entity.ProfileState), onError func(error)) func() {
	return repo.hub.watch(ctx, uid, onChange, onError)
}
