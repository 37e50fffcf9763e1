package services

import (
	"log"
	"time"

	"coachally/configs"
	"coachally/internal/errs"
	"coachally/internal/models"
	"coachally/internal/repositories"
	"coachally/internal/utils"
	"coachally/internal/validators"

	"github.com/google/uuid"
)

type AuthenticationService struct {
	authRepo *repositories.AuthenticationRepository
	config   *configs.Config
}

func NewAuthenticationService(
	authRepo *repositories.AuthenticationRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo: authRepo,
		config:   config,
	}
}

func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	var errors []error
	if as.CheckIfUserExists(user.Email) {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}
	validationErrs := validators.ValidateUser(user)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	// coach rows are seeded at migration, never registered
	user.IsCoach = false
	return as.authRepo.CreateUser(user)
}

func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, loginErrs := as.authRepo.Login(loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		return nil, errors
	}

	token, refreshToken, tokenErrs := as.issueTokenPair(user)
	if len(tokenErrs) > 0 {
		errors = append(errors, tokenErrs...)
		return nil, errors
	}

	return &models.LoginResponse{
		User:         *user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates a refresh token: the presented one is revoked and a fresh
// pair is issued.
func (as *AuthenticationService) Refresh(refreshToken string) (*models.RefreshResponse, []error) {
	var errors []error

	stored, getErrs := as.authRepo.GetRefreshToken(refreshToken)
	if len(getErrs) > 0 {
		errors = append(errors, getErrs...)
		return nil, errors
	}
	if stored.Revoked {
		errors = append(errors, errs.ErrRefreshTokenRevoked)
		return nil, errors
	}
	if time.Now().After(stored.ExpiresAt) {
		errors = append(errors, errs.ErrRefreshTokenExpired)
		return nil, errors
	}

	user, userErrs := as.authRepo.GetSingleUser(stored.UserID)
	if len(userErrs) > 0 {
		errors = append(errors, userErrs...)
		return nil, errors
	}

	if revokeErrs := as.authRepo.RevokeRefreshToken(refreshToken); len(revokeErrs) > 0 {
		errors = append(errors, revokeErrs...)
		return nil, errors
	}

	token, newRefreshToken, tokenErrs := as.issueTokenPair(user)
	if len(tokenErrs) > 0 {
		errors = append(errors, tokenErrs...)
		return nil, errors
	}

	return &models.RefreshResponse{
		Token:        token,
		RefreshToken: newRefreshToken,
	}, nil
}

func (as *AuthenticationService) Logout(refreshToken string) []error {
	return as.authRepo.RevokeRefreshToken(refreshToken)
}

func (as *AuthenticationService) issueTokenPair(user *models.User) (string, string, []error) {
	var errors []error

	jwtExpiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, jwtErr := utils.CreateJwtToken(
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		utils.GetJwtKey(),
		jwtExpiration,
	)
	if jwtErr != nil {
		errors = append(errors, jwtErr)
		return "", "", errors
	}

	refreshExpiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.refresh_expiration_time")) * time.Second)
	refreshToken := uuid.NewString()
	if saveErrs := as.authRepo.SaveRefreshToken(&models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshExpiration,
	}); len(saveErrs) > 0 {
		errors = append(errors, saveErrs...)
		return "", "", errors
	}

	return token, refreshToken, nil
}

func (as *AuthenticationService) CheckIfUserExists(email string) bool {
	return as.authRepo.CheckIfUserExists(email) != nil
}

func (as *AuthenticationService) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	if page < 0 || size < 0 {
		log.Println("Page or size < 0")
		errors = append(errors, errs.ErrInvalidPageOrSize)
		return nil, errors
	}
	return as.authRepo.GetAllUsersWithPagination(page, size)
}

func (as *AuthenticationService) GetSingleUser(id int) (*models.UserResponse, []error) {
	user, errs := as.authRepo.GetSingleUser(uint(id))
	if len(errs) > 0 {
		return nil, errs
	}
	return user.ToUserResponse(), nil
}

func (as *AuthenticationService) GetProfile(userID uint) (*models.ProfileResponse, []error) {
	user, errs := as.authRepo.GetSingleUser(userID)
	if len(errs) > 0 {
		return nil, errs
	}
	return user.ToProfileResponse(), nil
}

func (as *AuthenticationService) UpdateUser(update *models.UpdateUserRequest) (*models.ProfileResponse, []error) {
	user, errs := as.authRepo.UpdateUser(update)
	if len(errs) > 0 {
		return nil, errs
	}
	return user.ToProfileResponse(), nil
}

func (as *AuthenticationService) UpdateUserProfilePhoto(userID uint, url string) []error {
	return as.authRepo.UpdateUserProfilePhoto(userID, url)
}

func (as *AuthenticationService) GetUserOnlineStatus(userID uint) (bool, *time.Time, error) {
	return as.authRepo.GetUserOnlineStatus(userID)
}

func (as *AuthenticationService) SetUserOnlineStatus(userID uint, isOnline bool) (bool, *time.Time, error) {
	return as.authRepo.SetUserOnlineStatus(userID, isOnline)
}
