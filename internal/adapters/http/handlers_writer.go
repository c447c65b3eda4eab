package web

import (
	"errors"
	"net/http"

	"coala/internal/application/orchestrators"
	domainPost "coala/internal/domain/post"
)

// Writer form actions.
const (
	writerActionPreview = "preview"
	writerActionPublish = "publish"
)

type writerView struct {
	orchestrators.DraftPreview
	Error string
}

// handleWriter serves the markdown writer. GET shows the default draft; POST
// re-renders the preview or publishes, depending on the submitted action.
func handleWriter(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		respond(w, r, "write.html", "글쓰기", writerView{
			DraftPreview: orchestrators.ExecutePreviewDraft(orchestrators.DefaultDraftInput()),
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := orchestrators.DraftInput{
		Title:     r.FormValue("title"),
		TagsInput: r.FormValue("tags"),
		Markdown:  r.FormValue("markdown"),
	}
	preview := orchestrators.ExecutePreviewDraft(input)

	if r.FormValue("action") != writerActionPublish {
		renderTemplate(w, r, http.StatusOK, "write.html", "글쓰기", writerView{DraftPreview: preview})
		return
	}

	result, err := orchestrators.ExecutePublishDraft(r.Context(), orchestrators.PublishDraftInput{
		ClientID:   visitorOf(r).ClientID,
		DraftInput: input,
	}, orchestrators.PublishDraftDeps{
		DraftStore: stores.DraftStore,
		GenerateID: generateID,
		Now:        timeNow,
	})
	if errors.Is(err, domainPost.ErrEmptyDraftTitle) {
		renderTemplate(w, r, http.StatusUnprocessableEntity, "write.html", "글쓰기", writerView{
			DraftPreview: preview,
			Error:        "제목을 입력해주세요.",
		})
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	http.Redirect(w, r, result.Redirect, http.StatusSeeOther)
}
