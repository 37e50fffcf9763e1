package repositories

import (
	"time"

	"coachally/internal/errs"
	"coachally/internal/models"
	"coachally/internal/utils"

	"gorm.io/gorm"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(user *models.User) (*models.User, []error) {
	var errors []error
	result := ar.db.Create(user)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	return user, nil
}

func (ar *AuthenticationRepository) CheckIfUserExists(email string) *models.User {
	var user models.User
	result := ar.db.Where("email = ?", email).First(&user)
	if result.Error == nil && result.RowsAffected > 0 {
		return &user
	}
	return nil
}

func (ar *AuthenticationRepository) Login(login *models.LoginRequestBody) (*models.User, []error) {
	var errors []error
	user := ar.CheckIfUserExists(login.Email)
	if user == nil {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, login.Password); err != nil {
		errors = append(errors, errs.ErrWrongPassword)
		return nil, errors
	}
	return user, nil
}

func (ar *AuthenticationRepository) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	var users []models.User
	var total int64

	transactionErr := ar.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Where("is_coach = ?", false).
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.User{}).
			Where("is_coach = ?", false).
			Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	userResponses := []*models.UserResponse{}
	for _, user := range users {
		userResponses = append(userResponses, user.ToUserResponse())
	}

	return &models.GetUsersResponse{
		Users: userResponses,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

func (ar *AuthenticationRepository) GetSingleUser(id uint) (*models.User, []error) {
	var errors []error
	var user models.User
	result := ar.db.Where("id = ?", id).First(&user)
	if result.Error != nil {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	return &user, nil
}

func (ar *AuthenticationRepository) UpdateUser(update *models.UpdateUserRequest) (*models.User, []error) {
	var errors []error
	var user models.User
	if err := ar.db.Where("id = ?", update.ID).First(&user).Error; err != nil {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	user.FirstName = update.FirstName
	user.LastName = update.LastName
	if err := ar.db.Save(&user).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return &user, nil
}

func (ar *AuthenticationRepository) UpdateUserProfilePhoto(userID uint, url string) []error {
	var errors []error
	result := ar.db.Model(&models.User{}).Where("id = ?", userID).Update("profile_photo", url)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrUserNotFound)
		return errors
	}
	return nil
}

func (ar *AuthenticationRepository) GetUserOnlineStatus(userID uint) (bool, *time.Time, error) {
	var user models.User
	if err := ar.db.Select("is_online", "last_seen").Where("id = ?", userID).First(&user).Error; err != nil {
		return false, nil, err
	}
	return user.IsOnline, user.LastSeen, nil
}

func (ar *AuthenticationRepository) SetUserOnlineStatus(userID uint, isOnline bool) (bool, *time.Time, error) {
	now := time.Now()
	updates := map[string]interface{}{
		"is_online": isOnline,
		"last_seen": now,
	}
	if err := ar.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return false, nil, err
	}
	return isOnline, &now, nil
}

func (ar *AuthenticationRepository) SaveRefreshToken(token *models.RefreshToken) []error {
	var errors []error
	if err := ar.db.Create(token).Error; err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func (ar *AuthenticationRepository) GetRefreshToken(token string) (*models.RefreshToken, []error) {
	var errors []error
	var refreshToken models.RefreshToken
	result := ar.db.Where("token = ?", token).First(&refreshToken)
	if result.Error != nil {
		errors = append(errors, errs.ErrRefreshTokenNotFound)
		return nil, errors
	}
	return &refreshToken, nil
}

func (ar *AuthenticationRepository) RevokeRefreshToken(token string) []error {
	var errors []error
	result := ar.db.Model(&models.RefreshToken{}).Where("token = ?", token).Update("revoked", true)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrRefreshTokenNotFound)
		return errors
	}
	return nil
}
