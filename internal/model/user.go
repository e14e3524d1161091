package model

type User struct {
	ID        string
	FullName  string
	Email     string
	PushToken string
	Notify    bool
	Locale    string
}

type UserUpdate struct {
	PushToken *string
	Notify    *bool
	Locale    *string
}
