package handler

import (
	"io"
	"mime/multipart"

	"ewarrants/internal/delivery/api/middleware"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/errors"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// currentUser returns the authenticated caller or ErrUnauthorized.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathID parses the :id parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An id that cannot exist is reported like any other missing record.
		return uuid.Nil, domainerrors.ErrWarrantyNotFound
	}

	return id, nil
}

// readUpload loads the multipart file under field.
func readUpload(c echo.Context, field string) (*usecase.UploadInput, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " file is required")
	}

	data, err := readFile(header)
	if err != nil {
		return nil, err
	}

	return &usecase.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}

	return data, nil
}
