package models

// User represents a registered customer, keyed by normalized email
type User struct {
	Email        string `json:"email" dynamodbav:"email"`
	Username     string `json:"username" dynamodbav:"username"`
	PasswordHash string `json:"-" dynamodbav:"hashed_password"` // Hidden from JSON responses
	LoginCount   int64  `json:"login_count" dynamodbav:"login_count"`
}
