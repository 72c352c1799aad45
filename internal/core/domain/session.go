package domain

// UserSession is the descriptor a session id resolves to. It is a snapshot of
// the user taken at login time and is not refreshed while the session lives.
type UserSession struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
