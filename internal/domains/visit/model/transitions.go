package model

const (
	ActionComplete    = "complete"
	ActionCancel      = "cancel"
	ActionNotComplete = "not_complete"
	ActionReschedule  = "reschedule"
	ActionAssign      = "assign"
)

var transitionMap = map[string][]string{
	ActionComplete:    {StatusScheduled},
	ActionCancel:      {StatusScheduled},
	ActionNotComplete: {StatusScheduled},
	ActionReschedule:  {StatusScheduled},
	ActionAssign:      {StatusScheduled},
}

func ValidTransition(action, fromStatus string) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}

	return false
}
