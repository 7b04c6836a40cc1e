package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"ondeta/config"
	"ondeta/internal/delivery/api/middleware"
	"ondeta/internal/delivery/api/response"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// profileImageFields lists the accepted multipart field names, in lookup order.
var profileImageFields = []string{"image", "profileImage"}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// UserHandler serves the signed-in user's profile.
type UserHandler struct {
	profileUC    usecase.ProfileUsecase
	maxImageSize int64
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC:    params.ProfileUC,
		maxImageSize: params.Config.Storage.ProfileImageMaxSize,
		logger:       params.Logger,
	}
}

// UpdateProfileRequest is the body of PUT /api/users/profile. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UpdateProfile applies a partial name/email change.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Não autorizado")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(user))
}

// UploadProfileImage replaces the avatar with the multipart file sent as image
// (or profileImage).
func (h *UserHandler) UploadProfileImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Não autorizado")
	}

	fileHeader, ok := profileImageFile(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingFile)
	}
	if fileHeader.Size > h.maxImageSize {
		return response.HandleAppError(c, domainerrors.ErrImageTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrMissingFile.WithDetails(err.Error()))
	}
	defer file.Close()

	// Read one byte past the cap so an understated part size is still caught.
	data, err := io.ReadAll(io.LimitReader(file, h.maxImageSize+1))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrMissingFile.WithDetails(err.Error()))
	}

	user, err := h.profileUC.UploadProfileImage(c.Request().Context(), userID, &usecase.ProfileImageInput{
		Data: data,
		Size: fileHeader.Size,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(user))
}

func profileImageFile(c echo.Context) (*multipart.FileHeader, bool) {
	for _, field := range profileImageFields {
		if fileHeader, err := c.FormFile(field); err == nil {
			return fileHeader, true
		}
	}

	return nil, false
}
