package model

// Collection is the admin users document collection.
const Collection = "admins"

// RoleAdmin is the only role the backoffice recognizes today.
const RoleAdmin = "admin"

// AdminUser is a backoffice account. Password holds the bcrypt hash and is
// never serialized; PublicUser is the wire shape.
type AdminUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Public strips the password hash for API responses.
func (u *AdminUser) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// PublicUser is the admin account as exposed over the API.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
