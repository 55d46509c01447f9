// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It contains only the fundamental identity information shared across all roles.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier and contact email.
	PasswordHash string    // The bcrypt-hashed password.
	Role         Role      // The role assigned at creation. It never changes afterwards.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Student holds data specific to the student role, one-to-one with a User.
type Student struct {
	ID            uuid.UUID // The unique ID for this student profile.
	User          User      // The core account this profile belongs to.
	FullName      string    // The student's full legal name.
	RG            string    // Brazilian identity card number.
	Phone         string    // Primary contact phone.
	WhatsApp      string    // WhatsApp contact number.
	AcademicID    string    // The institution's enrollment number ("matrícula").
	AcademicClass string    // The class/cohort the student belongs to.
	Address       Address   // The student's residential address.
}

// Supervisor holds data specific to the academic supervisor role, one-to-one with a User.
type Supervisor struct {
	ID   uuid.UUID // The unique ID for this supervisor profile.
	User User      // The core account this profile belongs to.
	Name string    // The supervisor's display name.
}

// Admin holds data specific to the administrator role, one-to-one with a User.
type Admin struct {
	ID   uuid.UUID // The unique ID for this admin profile.
	User User      // The core account this profile belongs to.
	Name string    // The administrator's display name.
}
