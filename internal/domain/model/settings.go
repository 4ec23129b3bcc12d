package model

// AppSettings is the generic per-device settings bag persisted locally.
type AppSettings struct {
	Theme           string            `json:"theme,omitempty"`
	FontScale       float64           `json:"fontScale,omitempty"`
	ReminderMinutes int               `json:"reminderMinutes,omitempty"`
	HapticsEnabled  bool              `json:"hapticsEnabled"`
	Extra           map[string]string `json:"extra,omitempty"`
}
