package enums

const (
	CONVERSATION_TYPE_DIRECT = "direct"
	CONVERSATION_TYPE_COACH  = "coach"
	CONVERSATION_TYPE_GROUP  = "group"
)

// Coach identity of the seeded system user whose messages come from the
// completion API instead of a human client.
const (
	COACH_EMAIL      = "coach@coachally.app"
	COACH_FIRST_NAME = "Coach"
	COACH_LAST_NAME  = "Ally"
)
