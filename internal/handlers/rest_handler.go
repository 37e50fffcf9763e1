package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"coachally/internal/enums"
	"coachally/internal/errs"
	"coachally/internal/models"
	redisModels "coachally/internal/models/redis"
	"coachally/internal/msgs"
	"coachally/internal/services"
	"coachally/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RestHandler struct {
	ctx                context.Context
	redis              *redis.Client
	authService        *services.AuthenticationService
	chatService        *services.ChatService
	taskService        *services.TaskService
	fileManagerService *services.FileManagerService
}

func NewRestHandler(
	ctx context.Context,
	redis *redis.Client,
	authService *services.AuthenticationService,
	chatService *services.ChatService,
	taskService *services.TaskService,
	fileManagerService *services.FileManagerService,
) *RestHandler {
	return &RestHandler{
		ctx:                ctx,
		redis:              redis,
		authService:        authService,
		chatService:        chatService,
		taskService:        taskService,
		fileManagerService: fileManagerService,
	}
}

// Login godoc
// @Summary      Login user to account
// @Description  Exchange email and password for an access/refresh token pair
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var errors []error

	var loginData models.LoginRequestBody
	err := ctx.BindJSON(&loginData)
	if err != nil {
		log.Println("Error login data json binding:", err)
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

// Register godoc
// @Summary      Register a new user
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var errors []error

	var user models.User
	err := ctx.BindJSON(&user)
	if err != nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		errors = append(errors, registerErrs...)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

// Refresh godoc
// @Summary      Rotate a refresh token
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      401  {object}  models.Response
// @Router       /refresh [post]
func (rh *RestHandler) Refresh(ctx *gin.Context) {
	var refreshData models.RefreshRequestBody
	if err := ctx.BindJSON(&refreshData); err != nil || refreshData.RefreshToken == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	refreshResponse, refreshErrs := rh.authService.Refresh(refreshData.RefreshToken)
	if len(refreshErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  refreshErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    refreshResponse,
	})
}

func (rh *RestHandler) Logout(ctx *gin.Context) {
	var refreshData models.RefreshRequestBody
	if err := ctx.BindJSON(&refreshData); err != nil || refreshData.RefreshToken == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	if logoutErrs := rh.authService.Logout(refreshData.RefreshToken); len(logoutErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  logoutErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

func (rh *RestHandler) GetProfile(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	profile, profileErrs := rh.authService.GetProfile(userID)
	if len(profileErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  profileErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    profile,
	})
}

func (rh *RestHandler) GetAllUsersWithPagination(ctx *gin.Context) {
	pageInt, sizeInt := getPagination(ctx)

	response, getUsersErrs := rh.authService.GetAllUsersWithPagination(pageInt, sizeInt)
	if len(getUsersErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getUsersErrs,
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

func (rh *RestHandler) GetSingleUser(ctx *gin.Context) {
	id := ctx.Param("id")

	idInt, err := strconv.Atoi(id)
	if err != nil || idInt < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	user, getUserErrs := rh.authService.GetSingleUser(idInt)
	if len(getUserErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getUserErrs,
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    user,
	})
}

func (rh *RestHandler) UpdateUser(ctx *gin.Context) {
	var errors []error
	var updateUserRequest models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&updateUserRequest); err != nil {
		errors = append(errors, errs.ErrInvalidRequest)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		errors = append(errors, errs.ErrUnauthorized)
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	updateUserRequest.ID = userID

	updatedUser, updateErrs := rh.authService.UpdateUser(&updateUserRequest)
	if len(updateErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  updateErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    updatedUser,
	})
}

func (rh *RestHandler) UploadUserProfilePhoto(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		log.Println("User id not found")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	file, err := ctx.FormFile("profile_photo")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrNoFileUploaded},
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnableToOpenUploadedFile},
		})
		return
	}
	defer src.Close()

	// Unique object name per user, keeping the original extension
	fileExt := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("user_profile_photo_%s%s", strconv.Itoa(int(userID)), fileExt)

	url, err := rh.fileManagerService.UploadUserProfilePhoto(fileName, src, file.Size, file.Header.Get("Content-Type"), enums.FILE_BUCKET_USER_PROFILE)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnableToUploadFile},
		})
		return
	}

	if updateErrs := rh.authService.UpdateUserProfilePhoto(userID, url); updateErrs != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnableToUpdateProfilePhoto},
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    url,
	})
}

// CreateConversation godoc
// @Summary      Create a conversation
// @Description  Direct, group or coach conversation. The caller becomes a member automatically.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /conversations [post]
func (rh *RestHandler) CreateConversation(ctx *gin.Context) {
	var errors []error

	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	var createConversationRequestBody models.CreateConversationRequestBody
	err := ctx.BindJSON(&createConversationRequestBody)
	if err != nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	conversation, createErrs := rh.chatService.CreateConversation(userID, &createConversationRequestBody)
	if len(createErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  createErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversation,
	})
}

func (rh *RestHandler) GetUserConversationsByToken(ctx *gin.Context) {
	pageInt, sizeInt := getPagination(ctx)

	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		log.Println("User id not found")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	conversationsResponse, getErrs := rh.chatService.GetUserConversations(userID, pageInt, sizeInt)
	if len(getErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getErrs,
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversationsResponse,
	})
}

func (rh *RestHandler) GetConversationById(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	conversationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || conversationID < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidConversationId},
		})
		return
	}

	conversation, getErrs := rh.chatService.GetConversationById(userID, uint(conversationID))
	if len(getErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversation,
	})
}

func (rh *RestHandler) GetMessagesByConversationID(ctx *gin.Context) {
	pageInt, sizeInt := getPagination(ctx)

	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	conversationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || conversationID < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidConversationId},
		})
		return
	}

	messages, getErrs := rh.chatService.GetMessagesByConversationId(userID, uint(conversationID), pageInt, sizeInt)
	if len(getErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messages,
	})
}

// SaveMessage persists a message over REST and relays it to the conversation
// room, same as the socket path.
func (rh *RestHandler) SaveMessage(ctx *gin.Context) {
	senderID := utils.GetUserIdFromContext(ctx)
	if senderID < 1 {
		log.Println("User id not found")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	var messageRequest models.MessageRequest
	if err := ctx.ShouldBindJSON(&messageRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequest},
		})
		return
	}

	message := &models.Message{
		ConversationID: messageRequest.ConversationID,
		Content:        messageRequest.Content,
		SenderID:       senderID,
	}

	msg, saveErrs := rh.chatService.SaveMessage(message)
	if len(saveErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  saveErrs,
		})
		return
	}

	rh.publishChatEvent(enums.SOCKET_EVENT_SEND_MESSAGE, msg.ConversationID, msg)

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    msg,
	})
}

func (rh *RestHandler) publishChatEvent(event string, conversationID uint, payload any) {
	redisEvent := redisModels.RedisPublishedMessage{
		Event:          event,
		ConversationID: conversationID,
		Payload:        payload,
	}
	jsonEvent, err := json.Marshal(redisEvent)
	if err != nil {
		log.Printf("Error marshalling chat event: %v", err)
		return
	}
	if err := rh.redis.Publish(rh.ctx, redisModels.REDIS_CHANNEL_CHAT, jsonEvent).Err(); err != nil {
		log.Printf("Error publishing chat event: %v", err)
	}
}

func getPagination(ctx *gin.Context) (int, int) {
	page := ctx.Query("page")
	size := ctx.Query("size")

	pageInt, err := strconv.Atoi(page)
	if err != nil || pageInt < 1 {
		pageInt = 1
	}

	sizeInt, err := strconv.Atoi(size)
	if err != nil || sizeInt < 1 {
		sizeInt = 10
	}

	return pageInt, sizeInt
}
