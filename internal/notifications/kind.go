package notifications

type notificationKind string

const (
	kindClassReminder notificationKind = "class_reminder"
	kindClassStart    notificationKind = "class_start"
	kindTaskDeadline  notificationKind = "task_deadline"
)

func mapToKind(leadMinutes int) notificationKind {
	if leadMinutes == 0 {
		return kindClassStart
	}
	return kindClassReminder
}
