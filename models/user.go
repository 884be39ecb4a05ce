package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole defines the privilege level stored on a user.
type UserRole string

const (
	// RoleRegular is the zero value; regular users carry no role field.
	RoleRegular UserRole = ""
	RoleAdmin   UserRole = "admin"
)

// User is keyed by email. Fields the client sends beyond the known ones are
// kept in Profile and stored inline in the document.
type User struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name    string             `json:"name,omitempty" bson:"name,omitempty"`
	Email   string             `json:"email" bson:"email"`
	Role    UserRole           `json:"role,omitempty" bson:"role,omitempty"`
	Profile map[string]any     `json:"-" bson:",inline"`
}

// IsAdmin reports whether the stored role grants admin privileges.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

var userKnownKeys = []string{"_id", "name", "email", "role"}

// MarshalJSON flattens Profile next to the known fields.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Profile)+4)
	for k, v := range u.Profile {
		out[k] = v
	}
	if !u.ID.IsZero() {
		out["_id"] = u.ID.Hex()
	}
	if u.Name != "" {
		out["name"] = u.Name
	}
	out["email"] = u.Email
	if u.Role != RoleRegular {
		out["role"] = u.Role
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the known fields and keeps everything else in Profile.
// _id and role are never taken from client input.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var known struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	for _, k := range userKnownKeys {
		delete(raw, k)
	}
	*u = User{Name: known.Name, Email: known.Email}
	if len(raw) > 0 {
		u.Profile = raw
	}
	return nil
}
