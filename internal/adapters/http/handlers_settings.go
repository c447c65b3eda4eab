package web

import (
	"net/http"
	"strings"

	"coala/internal/adapters/storage/clientstore"
	"coala/internal/application/projections"
)

// maxBioRunes bounds the stored profile introduction.
const maxBioRunes = 500

// handleSettings renders the profile page. ?tab= picks the section and ?edit=1
// opens the introduction editor; POST saves the introduction.
func handleSettings(w http.ResponseWriter, r *http.Request) {
	tokens, hasStore := visitorStore(r)

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		if !hasStore {
			internalError(w, errNoVisitor)
			return
		}
		bio := strings.TrimSpace(r.FormValue("bio"))
		if runes := []rune(bio); len(runes) > maxBioRunes {
			bio = string(runes[:maxBioRunes])
		}
		if bio == "" {
			if err := tokens.Delete(r.Context(), clientstore.KeyProfileBio); err != nil {
				internalError(w, err)
				return
			}
		} else if err := tokens.Set(r.Context(), clientstore.KeyProfileBio, bio); err != nil {
			internalError(w, err)
			return
		}
		http.Redirect(w, r, "/settings?tab="+projections.ProfileTabOverview, http.StatusSeeOther)
		return
	}

	q := r.URL.Query()
	query := projections.GetProfileQuery{
		Tab:      q.Get("tab"),
		Editing:  q.Get("edit") == "1",
		ClientID: visitorOf(r).ClientID,
	}
	if hasStore {
		bio, ok, err := tokens.Get(r.Context(), clientstore.KeyProfileBio)
		if err != nil {
			internalError(w, err)
			return
		}
		if ok {
			query.Bio = bio
		}
	}
	if ra, err := loadAuth(r); err == nil && ra.session.IsLoggedIn() {
		query.DisplayName = ra.session.User().DisplayName()
	}

	result, err := projections.QueryGetProfile(r.Context(), query, projections.GetProfileDeps{
		HomeStore:     stores.HomeStore,
		ActivityStore: stores.ActivityStore,
		PostStore:     stores.PostStore,
		DraftStore:    stores.DraftStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	respond(w, r, "settings.html", "프로필 설정", result)
}
