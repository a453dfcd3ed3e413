package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"strconv"
	"strings"

	"ewarrants/config"
	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/repository"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	exportFileName    = "eWarrants_Export.csv"
	exportContentType = "text/csv"
	noCategory        = "N/A"
)

var exportHeader = []string{
	"Product Name",
	"Category",
	"Purchase Date",
	"Warranty Length (Months)",
	"Expiry Date",
	"Description",
	"Receipt URLs",
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	warrantyRepo repository.WarrantyRepository
	hasher       service.PasswordHasher
	dateLayout   string
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	WarrantyRepo repository.WarrantyRepository
	Hasher       service.PasswordHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	dateLayout := "1/2/2006"
	if params.Config != nil && params.Config.Export != nil && params.Config.Export.DateLayout != "" {
		dateLayout = params.Config.Export.DateLayout
	}

	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		warrantyRepo: params.WarrantyRepo,
		hasher:       params.Hasher,
		dateLayout:   dateLayout,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return findUser(ctx, srv.userRepo, userID)
}

func (srv *accountService) UpdateNotificationPrefs(ctx context.Context, userID uuid.UUID, input *usecase.NotificationPrefsInput) (*entity.EmailNotifications, error) {
	if input.Enabled == nil || input.ReminderDays == nil || *input.ReminderDays < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("enabled and a non-negative reminderDays are required")
	}

	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	user.EmailNotifications = entity.EmailNotifications{
		Enabled:      *input.Enabled,
		ReminderDays: *input.ReminderDays,
	}
	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update notification preferences")
	}

	srv.log(ctx).Info("Notification preferences updated",
		slog.Bool("enabled", user.EmailNotifications.Enabled),
		slog.Int("reminderDays", user.EmailNotifications.ReminderDays),
	)

	return &user.EmailNotifications, nil
}

// DeleteAccount removes warranties first, then the user, in one transaction.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID, input *usecase.DeleteAccountInput) error {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return err
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return domainerrors.ErrIncorrectPassword.WrapMessage("password confirmation failed")
	}

	var removed int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.WarrantyRepo().DeleteAllForOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete warranties")
		}
		removed = n

		if err := repoFactory.UserRepo().Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Account deletion failed", slog.Any("userID", userID), slog.Any("error", err))

		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID), slog.Int64("warranties", removed))

	return nil
}

func (srv *accountService) ExportWarranties(ctx context.Context, userID uuid.UUID) (*usecase.ExportFile, error) {
	warranties, err := srv.warrantyRepo.ListByOwner(ctx, userID, repository.ListOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warranties")
	}
	if len(warranties) == 0 {
		return nil, domainerrors.ErrNoWarrantiesToExport
	}

	content, err := srv.renderCSV(warranties)
	if err != nil {
		return nil, err
	}

	return &usecase.ExportFile{
		FileName:    exportFileName,
		ContentType: exportContentType,
		Content:     content,
	}, nil
}

func (srv *accountService) renderCSV(warranties []*entity.Warranty) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, errors.Wrap(err, "failed to write csv header")
	}
	for _, warranty := range warranties {
		category := warranty.Category
		if category == "" {
			category = noCategory
		}
		row := []string{
			warranty.ProductName,
			category,
			warranty.PurchaseDate.Format(srv.dateLayout),
			strconv.Itoa(warranty.WarrantyLengthMonths),
			warranty.ExpiryDate().Format(srv.dateLayout),
			warranty.Description,
			strings.Join(warranty.ReceiptURLs(), ", "),
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, "failed to write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush csv")
	}

	return buf.Bytes(), nil
}
