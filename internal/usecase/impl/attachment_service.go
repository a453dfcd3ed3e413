package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/usecase"
	"ewarrants/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const checksumKeyLength = 16

// attachmentService implements the AttachmentUsecase interface.
type attachmentService struct {
	store  service.BlobStore
	logger *slog.Logger
}

// AttachmentServiceParams holds dependencies for AttachmentService, injected by Fx.
type AttachmentServiceParams struct {
	fx.In

	Store  service.BlobStore
	Logger *slog.Logger
}

// NewAttachmentService is the constructor for attachmentService.
func NewAttachmentService(params AttachmentServiceParams) usecase.AttachmentUsecase {
	return &attachmentService{store: params.Store, logger: params.Logger}
}

// Upload stores the file under <owner>/<checksum>-<name>, so re-uploads of
// identical content reuse the same key.
func (srv *attachmentService) Upload(ctx context.Context, ownerID uuid.UUID, input *usecase.UploadInput) (*entity.Receipt, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	contentType := input.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(input.Data)
	}

	name := util.SanitizeFileName(input.FileName)
	key := fmt.Sprintf("%s/%s-%s", ownerID, util.ContentChecksum(input.Data, checksumKeyLength), name)

	url, err := srv.store.Upload(ctx, key, contentType, input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload file")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("File uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(input.Data)))),
		slog.String("contentType", contentType),
	)

	return &entity.Receipt{Name: input.FileName, URL: url, FileType: contentType}, nil
}
