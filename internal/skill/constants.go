package skill

const (
	ErrMsgSkillNameRequired = "skill name must not be blank"
	ErrMsgClassRequired     = "skill must belong to a class"
)

const (
	LogMsgSkillCreated  = "Skill created"
	LogMsgSkillDeleted  = "Skill deleted"
	LogMsgSkillAttached = "Skill attached to character"
	LogErrFailedToSave  = "Failed to save skill"
)
