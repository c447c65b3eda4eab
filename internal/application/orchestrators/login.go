package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"coala/internal/adapters/authapi"
	"coala/internal/domain/user"
)

// AfterAuthPath is where a successful login or signup lands.
const AfterAuthPath = "/"

// MissingFieldsMessage is shown when required form fields are empty.
const MissingFieldsMessage = "필수 항목을 모두 입력해주세요."

// SessionForAuth defines the session interface needed by the auth orchestrators.
type SessionForAuth interface {
	Login(ctx context.Context, req user.LoginRequest) error
	Signup(ctx context.Context, req user.SignupRequest) error
	Logout(ctx context.Context) error
	User() *user.UserData
}

// AuthError wraps a login or signup failure with the message the form shows.
type AuthError struct {
	Message string
	Err     error
}

// Error implements error.
func (e *AuthError) Error() string { return e.Message }

// Unwrap returns the underlying failure.
func (e *AuthError) Unwrap() error { return e.Err }

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult carries the result of a successful login or signup.
type AuthResult struct {
	UserID      int64
	DisplayName string
	Redirect    string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Session SessionForAuth
}

// ExecuteLogin signs the visitor in through the auth backend.
// PRE: none
// POST: On success tokens and user are persisted and Redirect is AfterAuthPath;
// on failure an *AuthError carries the form message and nothing is persisted
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (AuthResult, error) {
	req := user.LoginRequest{Email: input.Email, Password: input.Password}
	if err := deps.Session.Login(ctx, req); err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", reason(err))
		return AuthResult{}, &AuthError{Message: formMessage(err), Err: err}
	}
	return authResult(deps.Session.User()), nil
}

// SignupInput carries input for the signup orchestrator.
type SignupInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	Name            string
	Department      string
	StudentID       string
	AcademicStatus  string
}

// SignupDeps holds dependencies for Signup.
type SignupDeps struct {
	Session SessionForAuth
}

// ExecuteSignup registers the visitor through the auth backend.
// PRE: none
// POST: A password confirmation mismatch is rejected before any network call;
// on success tokens and user are persisted and Redirect is AfterAuthPath
func ExecuteSignup(ctx context.Context, input SignupInput, deps SignupDeps) (AuthResult, error) {
	if input.Password != input.PasswordConfirm {
		return AuthResult{}, &AuthError{Message: user.ErrPasswordMismatch.Error(), Err: user.ErrPasswordMismatch}
	}
	academic := input.AcademicStatus
	if academic == "" {
		academic = user.StatusEnrolled
	}
	req := user.SignupRequest{
		Email:          input.Email,
		Password:       input.Password,
		Name:           input.Name,
		Department:     input.Department,
		StudentID:      input.StudentID,
		AcademicStatus: academic,
	}
	if err := deps.Session.Signup(ctx, req); err != nil {
		slog.Info("auth_event", "event", "signup_failed", "email", input.Email, "reason", reason(err))
		return AuthResult{}, &AuthError{Message: formMessage(err), Err: err}
	}
	return authResult(deps.Session.User()), nil
}

// LogoutDeps holds dependencies for Logout.
type LogoutDeps struct {
	Session SessionForAuth
}

// ExecuteLogout ends the visitor's session.
// PRE: none
// POST: Local session state is cleared regardless of the backend's answer
func ExecuteLogout(ctx context.Context, deps LogoutDeps) error {
	return deps.Session.Logout(ctx)
}

func authResult(u *user.UserData) AuthResult {
	res := AuthResult{Redirect: AfterAuthPath}
	if u != nil {
		res.UserID = u.ID
		res.DisplayName = u.DisplayName()
	}
	return res
}

var validationErrors = []error{
	user.ErrEmptyEmail, user.ErrEmptyPassword, user.ErrEmptyName,
	user.ErrEmptyDepartment, user.ErrEmptyStudentID, user.ErrInvalidAcademic,
	user.ErrInvalidGender, user.ErrInvalidGrade,
}

func isValidation(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

func formMessage(err error) string {
	if isValidation(err) {
		return MissingFieldsMessage
	}
	return authapi.UserMessage(err)
}

func reason(err error) string {
	var apiErr *authapi.APIError
	switch {
	case isValidation(err):
		return "invalid_input"
	case errors.As(err, &apiErr):
		return "upstream_rejected"
	default:
		return "upstream_unavailable"
	}
}
