package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	deliverycontext "pixorva/internal/delivery/context"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"
	"pixorva/internal/util"

	"github.com/google/uuid"
)

// submissionRegistry rejects a second concurrent run of the same workflow for the same principal.
type submissionRegistry struct {
	inflight sync.Map
}

func (r *submissionRegistry) acquire(workflow, uid string) (release func(), ok bool) {
	key := workflow + ":" + uid
	if _, loaded := r.inflight.LoadOrStore(key, struct{}{}); loaded {
		return nil, false
	}

	return func() { r.inflight.Delete(key) }, true
}

func checkFileSize(file *service.MediaFile, maxSize int64) error {
	if maxSize > 0 && file.Size > maxSize {
		return domainerrors.ErrFileTooLarge.WithDetails(fmt.Sprintf("%s is %s, the limit is %s",
			file.Name, util.FormatBytes(file.Size), util.FormatBytes(maxSize)))
	}

	return nil
}

// asUploadError keeps uploader AppErrors and turns anything else into ErrUploadFailed.
func asUploadError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
}

// asCommitError keeps store AppErrors and turns anything else into ErrSubmissionFailed.
func asCommitError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(domainerrors.ErrSubmissionFailed, err.Error())
}

// publishEvent publishes after a commit. Failures are logged and never undo the commit.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType, subjectID, resourceID string, attributes map[string]string) {
	if publisher == nil {
		return
	}

	event := &service.MarketplaceEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		SubjectID:  subjectID,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}

	if err := publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish marketplace event",
			slog.String("type", eventType),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
