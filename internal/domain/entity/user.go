// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the identity record the backend returns on login or registration.
// It is backend-owned; this service holds transient copies only.
type User struct {
	ID          int64    `json:"id"`          // Backend-assigned identifier for the account.
	Username    string   `json:"username"`    // Login name, also usable as a login identifier.
	FirstName   string   `json:"firstName"`   // The user's given name.
	LastName    string   `json:"lastName"`    // The user's family name.
	Email       string   `json:"email"`       // Primary contact email, usable as a login identifier.
	PhoneNumber string   `json:"phoneNumber"` // Contact phone number.
	Role        Role     `json:"role"`        // CUSTOMER, VENDOR or ADMIN.
	Address     *Address `json:"address,omitempty"` // Default address. Nil when the account has none on file.
}

// Address is a postal address attached to a user or a vendor store.
type Address struct {
	Country   string `json:"country"`
	State     string `json:"state"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Street    string `json:"street"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// FullName joins the first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
