package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrUserAlreadyExists  = Error("user already exists")
	ErrUserNotFound       = Error("user not found")
	ErrWrongPassword      = Error("wrong password")
	ErrInvalidToken       = Error("invalid token")
	ErrInvalidEmail       = Error("invalid email")
	ErrInvalidPassword    = Error("invalid password")
	ErrInvalidUser        = Error("invalid user")
	ErrInvalidRequest     = Error("invalid request")
	ErrInvalidParams      = Error("invalid params")
	ErrFirstName          = Error("first name is empty or too short")
	ErrLastName           = Error("last name is empty or too short")
	ErrUnauthorized       = Error("unauthorized")
	ErrInvalidPageOrSize  = Error("invalid page or size")

	ErrRefreshTokenNotFound = Error("refresh token not found")
	ErrRefreshTokenExpired  = Error("refresh token expired")
	ErrRefreshTokenRevoked  = Error("refresh token revoked")

	ErrConversationNotFound  = Error("conversation not found")
	ErrInvalidConversationId = Error("invalid conversation id")
	ErrInvalidConversation   = Error("invalid conversation type or members")
	ErrNotConversationMember = Error("user is not a member of the conversation")
	ErrEmptyMessageContent   = Error("message content is empty")
	ErrNoneOfMessagesSeen    = Error("none of the messages could be marked as seen")

	ErrTaskNotFound     = Error("task not found")
	ErrInvalidTaskTitle = Error("task title is empty or too long")
	ErrNotTaskOwner     = Error("task belongs to another user")

	ErrCoachUnavailable = Error("coach reply could not be generated")

	ErrNoFileUploaded           = Error("no file uploaded")
	ErrUnableToOpenUploadedFile = Error("unable to open uploaded file")
	ErrUnableToUploadFile       = Error("unable to upload file")

	ErrUnableToUpdateProfilePhoto = Error("unable to update profile photo")
)
