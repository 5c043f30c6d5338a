package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"gitwrapped/internal/app"
	"gitwrapped/internal/render"
)

// Service can compute the wrapped stats for a user.
type Service interface {
	YearInReview(ctx context.Context, login string, token string, ownProfile bool) (app.Stats, error)
}

type statsQuery struct {
	Username string `validate:"required,ghusername"`
}

// newValidator builds the request validator with the github username rule.
func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("ghusername", func(fl validator.FieldLevel) bool {
		return app.ValidUsername(fl.Field().String())
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// NewStatsHandler creates handlerfunc returning the wrapped stats as json.
//
// Requires a session. The username query param defaults to the session
// login; the own-profile capability is granted only when the two match.
func NewStatsHandler(
	sessions Sessions,
	service Service,
	validate *validator.Validate,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.Session(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized. Please sign in with GitHub.")
			return
		}

		username := r.URL.Query().Get("username")
		if username == "" {
			username = sess.Login
		}
		if username == "" {
			writeError(w, http.StatusBadRequest, "Username is required.")
			return
		}
		if err := validate.Struct(statsQuery{Username: username}); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid GitHub username.")
			return
		}

		ownProfile := strings.EqualFold(username, sess.Login)

		stats, err := service.YearInReview(r.Context(), username, sess.Token, ownProfile)
		if err != nil {
			switch {
			case app.IsNotFoundError(err):
				writeError(w, http.StatusNotFound, "GitHub user not found")
			case app.IsInvalidRequestError(err):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				l.Errorf("computing stats for %s: %v", username, err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(newStatsResponse(stats))
	}
}

// NewSlideImageHandler creates handlerfunc rendering one slide's 1200x630
// preview image.
//
// A session is optional here: social crawlers hit these urls anonymously, so
// without one the pipeline runs with the service-level fallback token and
// public data only.
func NewSlideImageHandler(
	sessions Sessions,
	service Service,
	fallbackToken string,
	validate *validator.Validate,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if err := validate.Struct(statsQuery{Username: username}); err != nil {
			http.Error(w, "invalid username", http.StatusBadRequest)
			return
		}

		slide, err := strconv.Atoi(chi.URLParam(r, "slide"))
		if err != nil || slide < 1 || slide > render.SlideCount {
			http.Error(w, "invalid slide", http.StatusBadRequest)
			return
		}

		token := fallbackToken
		ownProfile := false
		if sess, ok := sessions.Session(r); ok {
			token = sess.Token
			ownProfile = strings.EqualFold(username, sess.Login)
		}

		stats, err := service.YearInReview(r.Context(), username, token, ownProfile)
		if err != nil {
			l.Errorf("computing stats for %s slide image: %v", username, err)
			http.Error(w, "Error generating image", http.StatusInternalServerError)
			return
		}

		year := time.Now().Year()
		svg, err := render.SlideSVG(slide, stats, year)
		if err != nil {
			l.Errorf("rendering slide %d for %s: %v", slide, username, err)
			http.Error(w, "Error generating image", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(svg)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(errorResponse{Error: message})
}
