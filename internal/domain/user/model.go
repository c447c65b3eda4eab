package user

import (
	"errors"
	"strings"
)

// Academic statuses
const (
	StatusEnrolled  = "ENROLLED"
	StatusOnLeave   = "ON_LEAVE"
	StatusGraduated = "GRADUATED"
)

// Genders
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderNone   = "NONE"
)

// Domain errors
var (
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordMismatch = errors.New("비밀번호가 일치하지 않습니다.")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyDepartment  = errors.New("department is required")
	ErrEmptyStudentID   = errors.New("student id is required")
	ErrInvalidAcademic  = errors.New("academic status must be one of: ENROLLED, ON_LEAVE, GRADUATED")
	ErrInvalidGender    = errors.New("gender must be one of: MALE, FEMALE, NONE")
	ErrInvalidGrade     = errors.New("grade must be between 1 and 6")
)

// ValidAcademicStatuses contains all academic statuses.
var ValidAcademicStatuses = []string{StatusEnrolled, StatusOnLeave, StatusGraduated}

// AcademicOption is a labelled academic status choice.
type AcademicOption struct {
	Value string
	Label string
}

// AcademicOptions returns the signup choices in display order.
func AcademicOptions() []AcademicOption {
	return []AcademicOption{
		{Value: StatusEnrolled, Label: "재학"},
		{Value: StatusOnLeave, Label: "휴학"},
		{Value: StatusGraduated, Label: "졸업"},
	}
}

// UserData is the signed-in member as returned by the auth backend.
type UserData struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Nickname       *string `json:"nickname"`
	BirthDate      *string `json:"birthDate"`
	Gender         *string `json:"gender"`
	Department     string  `json:"department"`
	StudentID      string  `json:"studentId"`
	Grade          *int    `json:"grade"`
	AcademicStatus string  `json:"academicStatus"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// DisplayName prefers the nickname over the legal name.
func (u UserData) DisplayName() string {
	if u.Nickname != nil && *u.Nickname != "" {
		return *u.Nickname
	}
	return u.Name
}

// AuthResponse is the token bundle returned by login, signup and refresh.
type AuthResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	TokenType    string    `json:"tokenType"`
	User         *UserData `json:"user,omitempty"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the LoginRequest has valid data.
// PRE: none
// POST: Returns nil if email and password are present
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmptyEmail
	}
	if r.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// SignupRequest is the signup payload. Optional fields are omitted when empty.
type SignupRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Nickname       string `json:"nickname,omitempty"`
	BirthDate      string `json:"birthDate,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Department     string `json:"department"`
	StudentID      string `json:"studentId"`
	Grade          int    `json:"grade,omitempty"`
	AcademicStatus string `json:"academicStatus"`
}

// Validate checks if the SignupRequest has valid data.
// PRE: none
// POST: Returns nil if required fields are present and enums are known
func (r *SignupRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmptyEmail
	}
	if r.Password == "" {
		return ErrEmptyPassword
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(r.Department) == "" {
		return ErrEmptyDepartment
	}
	if strings.TrimSpace(r.StudentID) == "" {
		return ErrEmptyStudentID
	}
	if !contains(ValidAcademicStatuses, r.AcademicStatus) {
		return ErrInvalidAcademic
	}
	if r.Gender != "" && !contains([]string{GenderMale, GenderFemale, GenderNone}, r.Gender) {
		return ErrInvalidGender
	}
	if r.Grade < 0 || r.Grade > 6 {
		return ErrInvalidGrade
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
