package domain

// NotificationPref is tri-state: the user may never have answered.
type NotificationPref string

const (
	NotificationsUnset    NotificationPref = ""
	NotificationsEnabled  NotificationPref = "enabled"
	NotificationsDisabled NotificationPref = "disabled"
)

type Settings struct {
	DarkMode       bool
	Notifications  NotificationPref
	OnboardingDone bool
}

// NotificationsOn is true only when the user explicitly enabled them.
func (s Settings) NotificationsOn() bool {
	return s.Notifications == NotificationsEnabled
}
