package web

import (
	"errors"
	"log/slog"
	"net/http"

	"coala/internal/adapters/authapi"
	"coala/internal/application/orchestrators"
	"coala/internal/domain/user"
)

// Auth page copy.
const (
	authEyebrow        = "동아리 코알라"
	loginHeading       = "다시 오신 것을 환영해요."
	loginDescription   = "커뮤니티, 정보공유, 스터디 모집 기능을 이용하려면 로그인하세요."
	signupHeading      = "동아리 코알라에 가입하세요."
	signupDescription  = "회원가입 후 커뮤니티 게시판, 자료 공유, 알림 기능을 사용할 수 있습니다."
	loginSwitchLabel   = "아직 계정이 없나요? 회원가입"
	signupSwitchLabel  = "이미 계정이 있나요? 로그인"
	sessionExpiredNote = "세션이 만료되었습니다. 다시 로그인해주세요."
)

// authView is the login and signup form state. Passwords are never echoed back.
type authView struct {
	Signup          bool
	Eyebrow         string
	Heading         string
	Description     string
	SwitchLabel     string
	SwitchPath      string
	Error           string
	Notice          string
	Email           string
	Name            string
	Department      string
	StudentID       string
	AcademicStatus  string
	AcademicOptions []user.AcademicOption
}

func newAuthView(signup bool) authView {
	if signup {
		return authView{
			Signup:          true,
			Eyebrow:         authEyebrow,
			Heading:         signupHeading,
			Description:     signupDescription,
			SwitchLabel:     signupSwitchLabel,
			SwitchPath:      "/login",
			AcademicStatus:  user.StatusEnrolled,
			AcademicOptions: user.AcademicOptions(),
		}
	}
	return authView{
		Eyebrow:     authEyebrow,
		Heading:     loginHeading,
		Description: loginDescription,
		SwitchLabel: loginSwitchLabel,
		SwitchPath:  "/signup",
	}
}

// handleLogin shows the login form and signs the visitor in.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	view := newAuthView(false)
	if r.Method == http.MethodGet {
		if r.URL.Query().Get("expired") == "1" {
			view.Notice = sessionExpiredNote
		}
		renderTemplate(w, r, http.StatusOK, "auth.html", "로그인", view)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	view.Email = r.FormValue("email")

	ra, err := loadAuth(r)
	if err != nil {
		internalError(w, err)
		return
	}
	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}, orchestrators.LoginDeps{Session: ra.session})
	if err != nil {
		renderAuthFailure(w, r, "로그인", view, err)
		return
	}
	http.Redirect(w, r, result.Redirect, http.StatusSeeOther)
}

// handleSignup shows the signup form and registers the visitor.
func handleSignup(w http.ResponseWriter, r *http.Request) {
	view := newAuthView(true)
	if r.Method == http.MethodGet {
		renderTemplate(w, r, http.StatusOK, "auth.html", "회원가입", view)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	view.Email = r.FormValue("email")
	view.Name = r.FormValue("name")
	view.Department = r.FormValue("department")
	view.StudentID = r.FormValue("studentId")
	if status := r.FormValue("academicStatus"); status != "" {
		view.AcademicStatus = status
	}

	ra, err := loadAuth(r)
	if err != nil {
		internalError(w, err)
		return
	}
	result, err := orchestrators.ExecuteSignup(r.Context(), orchestrators.SignupInput{
		Email:           view.Email,
		Password:        r.FormValue("password"),
		PasswordConfirm: r.FormValue("passwordConfirm"),
		Name:            view.Name,
		Department:      view.Department,
		StudentID:       view.StudentID,
		AcademicStatus:  view.AcademicStatus,
	}, orchestrators.SignupDeps{Session: ra.session})
	if err != nil {
		renderAuthFailure(w, r, "회원가입", view, err)
		return
	}
	http.Redirect(w, r, result.Redirect, http.StatusSeeOther)
}

// renderAuthFailure re-renders the form with the failure message. An expired
// session while authenticating lands on the login page.
func renderAuthFailure(w http.ResponseWriter, r *http.Request, title string, view authView, err error) {
	if errors.Is(err, authapi.ErrSessionExpired) {
		http.Redirect(w, r, "/login?expired=1", http.StatusSeeOther)
		return
	}
	var authErr *orchestrators.AuthError
	if !errors.As(err, &authErr) {
		internalError(w, err)
		return
	}
	view.Error = authErr.Message
	renderTemplate(w, r, http.StatusUnprocessableEntity, "auth.html", title, view)
}

// handleLogout ends the session. Local state is always cleared; a session that
// expired during the upstream call is sent to the login page.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	ra, err := loadAuth(r)
	if err != nil {
		internalError(w, err)
		return
	}
	if err := orchestrators.ExecuteLogout(r.Context(), orchestrators.LogoutDeps{Session: ra.session}); err != nil {
		internalError(w, err)
		return
	}
	if ra.expired {
		slog.Info("auth_event", "event", "logout_after_expiry")
		http.Redirect(w, r, "/login?expired=1", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
