package impl

import (
	"context"
	"log/slog"
	"time"

	"pixorva/config"
	deliverycontext "pixorva/internal/delivery/context"
	"pixorva/internal/domain/constants"
	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/repository"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"
	"pixorva/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const workflowVerification = "verification"

type verificationService struct {
	profiles    repository.ProfileRepository
	uploader    service.MediaUploader
	publisher   service.EventPublisher
	submissions *submissionRegistry
	timeout     time.Duration
	maxFileSize int64
	logger      *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	Profiles  repository.ProfileRepository
	Uploader  service.MediaUploader
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		profiles:    params.Profiles,
		uploader:    params.Uploader,
		publisher:   params.Publisher,
		submissions: &submissionRegistry{},
		timeout:     params.Config.Upload.Timeout,
		maxFileSize: params.Config.Upload.MaxFileSize,
		logger:      params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Status is a point lookup; later profile changes are not followed.
func (srv *verificationService) Status(ctx context.Context, principal *entity.Principal) (*usecase.VerificationOutput, error) {
	if principal == nil {
		return nil, domainerrors.ErrNotLoggedIn
	}

	profile, err := srv.profiles.Get(ctx, principal.ID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrProfileNotFound) {
			srv.log(ctx).Warn("Failed to read verification status", slog.String("uid", principal.ID), slog.Any("error", err))
		}

		return &usecase.VerificationOutput{State: usecase.VerificationPageForm}, nil
	}

	if profile.IsPending() {
		return &usecase.VerificationOutput{State: usecase.VerificationPagePending, Documents: profile.Documents}, nil
	}

	return &usecase.VerificationOutput{State: usecase.VerificationPageForm}, nil
}

// Submit uploads both documents, then sets them on the profile in one update.
// Nothing is written unless both uploads succeed.
func (srv *verificationService) Submit(ctx context.Context, input *usecase.SubmitVerificationInput) (*usecase.VerificationOutput, error) {
	if input.Principal == nil {
		return nil, domainerrors.ErrNotLoggedIn
	}
	if input.GSTProof == nil || input.BusinessProof == nil {
		return nil, domainerrors.ErrDocumentsRequired
	}
	for _, file := range []*service.MediaFile{input.GSTProof, input.BusinessProof} {
		if err := checkFileSize(file, srv.maxFileSize); err != nil {
			return nil, err
		}
	}

	uid := input.Principal.ID
	release, ok := srv.submissions.acquire(workflowVerification, uid)
	if !ok {
		return nil, domainerrors.ErrSubmissionInProgress
	}
	defer release()

	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	var documents entity.VerificationDocuments
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		url, err := srv.uploader.Upload(groupCtx, input.GSTProof)
		if err != nil {
			return errors.Wrap(err, "failed to upload GST proof")
		}
		documents.GSTProofURL = url

		return nil
	})
	group.Go(func() error {
		url, err := srv.uploader.Upload(groupCtx, input.BusinessProof)
		if err != nil {
			return errors.Wrap(err, "failed to upload business proof")
		}
		documents.BusinessProofURL = url

		return nil
	})
	if err := group.Wait(); err != nil {
		srv.log(ctx).Warn("Verification upload failed", slog.String("uid", uid), slog.Any("error", err))

		return nil, asUploadError(err)
	}

	if err := srv.profiles.SubmitVerification(ctx, uid, documents); err != nil {
		srv.log(ctx).Error("Failed to commit verification documents", slog.String("uid", uid), slog.Any("error", err))

		return nil, asCommitError(err)
	}

	srv.log(ctx).Info("Verification documents submitted", slog.String("uid", uid))

	publishEvent(ctx, srv.publisher, srv.log(ctx), constants.EventVerificationSubmitted, uid, uid, map[string]string{
		"gst_proof_url":      documents.GSTProofURL,
		"business_proof_url": documents.BusinessProofURL,
	})

	return &usecase.VerificationOutput{State: usecase.VerificationPagePending, Documents: &documents}, nil
}
