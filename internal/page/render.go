package page

import (
	"net/http"

	"github.com/haojie06/openai-image-http/internal/model"
)

const HomeTemplate = "home.html"

// View is what the home template reads. At most one of Error and Data is set.
type View struct {
	Prompt string

	N int8

	Size model.Size

	Error string

	Data []model.ResultLine
}

// Binding picks the template and the status code for a State.
type Binding struct {
	// status used when the upstream failed, the page itself is still rendered
	UpstreamErrorStatus int
}

func NewBinding(upstreamErrorStatus int) Binding {
	if upstreamErrorStatus < 400 || upstreamErrorStatus > 599 {
		upstreamErrorStatus = http.StatusBadGateway
	}
	return Binding{UpstreamErrorStatus: upstreamErrorStatus}
}

// Home renders the empty form.
func (b Binding) Home() (name string, status int, view *View) {
	return HomeTemplate, http.StatusOK, nil
}

// Render binds a reconciled state. The status is chosen from the state alone.
func (b Binding) Render(state State) (name string, status int, view *View) {
	switch s := state.(type) {
	case SuccessState:
		return HomeTemplate, http.StatusOK, &View{Prompt: s.Prompt, N: s.N, Size: s.Size, Data: s.Data}
	case ErrorState:
		return HomeTemplate, b.UpstreamErrorStatus, &View{Prompt: s.Prompt, N: s.N, Size: s.Size, Error: s.Error}
	}
	return HomeTemplate, http.StatusInternalServerError, &View{Error: messageMalformedResult}
}

// Rejected is the view for a form that never reached the upstream.
func Rejected(form model.GenerationForm, message string) *View {
	view := &View{Prompt: form.Prompt, N: form.N, Error: message}
	if size, err := model.ParseSize(form.Size); err == nil {
		view.Size = size
	}
	return view
}
