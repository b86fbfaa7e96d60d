// Package docstore implements the profile and product stores on Cloud Firestore.
package docstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pixorva/config"
	"pixorva/internal/domain/constants"
	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/repository"
	"pixorva/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Params holds dependencies for the Firestore repositories, injected by Fx.
type Params struct {
	fx.In

	Client *firestore.Client
	Config *config.Config
	Logger *slog.Logger
}

type profileRepository struct {
	users       *firestore.CollectionRef
	callTimeout time.Duration
	logger      *slog.Logger
}

// NewProfileRepository creates a ProfileRepository over the users collection.
func NewProfileRepository(params Params) repository.ProfileRepository {
	return &profileRepository{
		users:       params.Client.Collection(constants.CollectionUsers),
		callTimeout: params.Config.Store.CallTimeout,
		logger:      params.Logger,
	}
}

func (repo *profileRepository) Get(ctx context.Context, uid string) (*entity.Profile, error) {
	ctx, cancel := withCallTimeout(ctx, repo.callTimeout)
	defer cancel()

	snap, err := repo.users.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read profile")
	}

	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}

	return doc.toDomain(), nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	ctx, cancel := withCallTimeout(ctx, repo.callTimeout)
	defer cancel()

	if _, err := repo.users.Doc(profile.UID).Set(ctx, fromProfileDomain(profile)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write profile")
	}

	return nil
}

func (repo *profileRepository) SubmitVerification(ctx context.Context, uid string, documents entity.VerificationDocuments) error {
	ctx, cancel := withCallTimeout(ctx, repo.callTimeout)
	defer cancel()

	_, err := repo.users.Doc(uid).Update(ctx, []firestore.Update{
		{Path: "verificationStatus", Value: string(entity.VerificationStatusPending)},
		{Path: "documents", Value: documentsDoc{
			GSTProofURL:      documents.GSTProofURL,
			BusinessProofURL: documents.BusinessProofURL,
		}},
		{Path: "submittedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domainerrors.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to submit verification")
	}

	return nil
}

// Watch listens on the document until stop is called or ctx ends.
// A listener error is reported once and ends the subscription.
func (repo *profileRepository) Watch(ctx context.Context, uid string, onChange func(entity.ProfileState), onError func(error)) func() {
	watchCtx, cancel := context.WithCancel(ctx)
	it := repo.users.Doc(uid).Snapshots(watchCtx)

	go func() {
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				if watchCtx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				onError(errors.Wrap(err, "profile listener failed"))

				return
			}

			if !snap.Exists() {
				onChange(entity.AbsentProfile())

				continue
			}

			var doc profileDoc
			if err := snap.DataTo(&doc); err != nil {
				onError(errors.Wrap(err, "failed to decode profile"))

				continue
			}
			onChange(entity.PresentProfile(*doc.toDomain()))
		}
	}()

	var once sync.Once

	return func() {
		once.Do(cancel)
	}
}

func withCallTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
