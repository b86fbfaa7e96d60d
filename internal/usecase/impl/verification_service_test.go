package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"pixorva/internal/domain/constants"
	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"
	mockRepo "pixorva/internal/mocks/repository"
	mockSvc "pixorva/internal/mocks/service"
	"pixorva/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type verificationServiceFixtures struct {
	service   usecase.VerificationUsecase
	profiles  *mockRepo.MockProfileRepository
	uploader  *mockSvc.MockMediaUploader
	publisher *mockSvc.MockEventPublisher
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	profiles := mockRepo.NewMockProfileRepository(t)
	uploader := mockSvc.NewMockMediaUploader(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return verificationServiceFixtures{
		service: NewVerificationService(VerificationServiceParams{
			Profiles:  profiles,
			Uploader:  uploader,
			Publisher: publisher,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
		profiles:  profiles,
		uploader:  uploader,
		publisher: publisher,
	}
}

var seller = &entity.Principal{ID: "uid-seller", Email: "seller@example.com"}

func TestVerificationService_Submit_Success(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()
	gst := newMediaFile("gst.pdf", "gst")
	business := newMediaFile("business.pdf", "business")

	fx.uploader.EXPECT().Upload(mock.Anything, gst).Return("https://cdn.example.com/gst.pdf", nil).Once()
	fx.uploader.EXPECT().Upload(mock.Anything, business).Return("https://cdn.example.com/business.pdf", nil).Once()
	fx.profiles.EXPECT().SubmitVerification(mock.Anything, seller.ID, entity.VerificationDocuments{
		GSTProofURL:      "https://cdn.example.com/gst.pdf",
		BusinessProofURL: "https://cdn.example.com/business.pdf",
	}).Return(nil).Once()
	fx.publisher.EXPECT().PublishMarketplaceEvent(mock.Anything, mock.MatchedBy(func(e *service.MarketplaceEvent) bool {
		return e.Type == constants.EventVerificationSubmitted && e.SubjectID == seller.ID
	})).Return(nil).Once()

	out, err := fx.service.Submit(ctx, &usecase.SubmitVerificationInput{
		Principal:     seller,
		GSTProof:      gst,
		BusinessProof: business,
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.VerificationPagePending, out.State)
	assert.Equal(t, "https://cdn.example.com/gst.pdf", out.Documents.GSTProofURL)
}

func TestVerificationService_Submit_OneUploadFails(t *testing.T) {
	fx := createTestVerificationService(t)
	gst := newMediaFile("gst.pdf", "gst")
	business := newMediaFile("business.pdf", "business")

	fx.uploader.EXPECT().Upload(mock.Anything, gst).Return("https://cdn.example.com/gst.pdf", nil).Maybe()
	fx.uploader.EXPECT().Upload(mock.Anything, business).Return("", errors.New("connection reset")).Once()

	_, err := fx.service.Submit(context.Background(), &usecase.SubmitVerificationInput{
		Principal:     seller,
		GSTProof:      gst,
		BusinessProof: business,
	})

	require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	fx.profiles.AssertNotCalled(t, "SubmitVerification", mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishMarketplaceEvent", mock.Anything, mock.Anything)
}

func TestVerificationService_Submit_BothUploadsFail(t *testing.T) {
	fx := createTestVerificationService(t)

	fx.uploader.EXPECT().Upload(mock.Anything, mock.Anything).Return("", errors.New("service unavailable"))

	_, err := fx.service.Submit(context.Background(), &usecase.SubmitVerificationInput{
		Principal:     seller,
		GSTProof:      newMediaFile("gst.pdf", "gst"),
		BusinessProof: newMediaFile("business.pdf", "business"),
	})

	require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	fx.profiles.AssertNotCalled(t, "SubmitVerification", mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishMarketplaceEvent", mock.Anything, mock.Anything)
}

func TestVerificationService_Submit_MissingDocument(t *testing.T) {
	fx := createTestVerificationService(t)

	_, err := fx.service.Submit(context.Background(), &usecase.SubmitVerificationInput{
		Principal: seller,
		GSTProof:  newMediaFile("gst.pdf", "gst"),
	})

	require.ErrorIs(t, err, domainerrors.ErrDocumentsRequired)
	assert.Equal(t, "Please upload both documents.", domainerrors.ErrDocumentsRequired.Message())
}

func TestVerificationService_Submit_CommitFails(t *testing.T) {
	fx := createTestVerificationService(t)

	fx.uploader.EXPECT().Upload(mock.Anything, mock.Anything).Return("https://cdn.example.com/doc.pdf", nil).Twice()
	fx.profiles.EXPECT().SubmitVerification(mock.Anything, seller.ID, mock.Anything).Return(errors.New("deadline exceeded")).Once()

	_, err := fx.service.Submit(context.Background(), &usecase.SubmitVerificationInput{
		Principal:     seller,
		GSTProof:      newMediaFile("gst.pdf", "gst"),
		BusinessProof: newMediaFile("business.pdf", "business"),
	})

	require.ErrorIs(t, err, domainerrors.ErrSubmissionFailed)
	fx.publisher.AssertNotCalled(t, "PublishMarketplaceEvent", mock.Anything, mock.Anything)
}

func TestVerificationService_Submit_PublishFailureKeepsCommit(t *testing.T) {
	fx := createTestVerificationService(t)

	fx.uploader.EXPECT().Upload(mock.Anything, mock.Anything).Return("https://cdn.example.com/doc.pdf", nil).Twice()
	fx.profiles.EXPECT().SubmitVerification(mock.Anything, seller.ID, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishMarketplaceEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	out, err := fx.service.Submit(context.Background(), &usecase.SubmitVerificationInput{
		Principal:     seller,
		GSTProof:      newMediaFile("gst.pdf", "gst"),
		BusinessProof: newMediaFile("business.pdf", "business"),
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.VerificationPagePending, out.State)
}

func TestVerificationService_Submit_RejectsConcurrentSubmission(t *testing.T) {
	fx := createTestVerificationService(t)
	started := make(chan struct{})
	unblock := make(chan struct{})
	var once sync.Once

	fx.uploader.EXPECT().Upload(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.MediaFile) (string, error) {
			once.Do(func() { close(started) })
			<-unblock

			return "https://cdn.example.com/doc.pdf", nil
		}).Twice()
	fx.profiles.EXPECT().SubmitVerification(mock.Anything, seller.ID, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishMarketplaceEvent(mock.Anything, mock.Anything).Return(nil).Once()

	input := &usecase.SubmitVerificationInput{
		Principal:     seller,
		GSTProof:      newMediaFile("gst.pdf", "gst"),
		BusinessProof: newMediaFile("business.pdf", "business"),
	}

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.Submit(context.Background(), input)
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first submission did not start uploading")
	}

	_, err := fx.service.Submit(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrSubmissionInProgress)

	close(unblock)
	require.NoError(t, <-done)
}

func TestVerificationService_Status(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.Profile
		err     error
		want    usecase.VerificationPageState
	}{
		{name: "pending", profile: &entity.Profile{VerificationStatus: entity.VerificationStatusPending}, want: usecase.VerificationPagePending},
		{name: "none", profile: &entity.Profile{VerificationStatus: entity.VerificationStatusNone}, want: usecase.VerificationPageForm},
		{name: "field absent", profile: &entity.Profile{}, want: usecase.VerificationPageForm},
		{name: "record missing", err: domainerrors.ErrProfileNotFound, want: usecase.VerificationPageForm},
		{name: "read error", err: errors.New("unavailable"), want: usecase.VerificationPageForm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVerificationService(t)
			ctx := context.Background()

			fx.profiles.EXPECT().Get(ctx, seller.ID).Return(tt.profile, tt.err).Once()

			out, err := fx.service.Status(ctx, seller)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.State)
		})
	}
}
