package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/9seconds/geolocator/locator"
)

type contextKey string

const contextKeySettings contextKey = "settings"

// Settings define how clients are created for incoming requests. Each
// request gets its own client.
type Settings struct {
	Config  locator.Config
	Options []locator.Option
}

func (s *Settings) newClient(conf locator.Config, addresses []string) (*locator.Client, bool, error) {
	opts := make([]locator.Option, 0, len(s.Options)+1)
	opts = append(opts, s.Options...)
	opts = append(opts, locator.WithConfig(conf))

	client, err := locator.NewClient(opts...)
	if err != nil {
		return nil, false, err
	}

	for _, v := range addresses {
		if !client.AddAddress(v) {
			return client, false, nil
		}
	}

	return client, true, nil
}

func MakeServer(settings *Settings) *chi.Mux {
	router := chi.NewRouter()

	ctxSettings := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), contextKeySettings, settings)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(middleware.SetHeader("Content-Type", "application/json"))
	router.Use(ctxSettings)

	router.Get("/", resolveQuery)
	router.Post("/", resolveBody)
	router.Get("/self", selfResolve)
	router.Get("/info", settingsInfo)

	return router
}

func getSettings(r *http.Request) *Settings {
	return r.Context().Value(contextKeySettings).(*Settings)
}

func abort(w http.ResponseWriter, code int, message string) {
	msg, _ := json.Marshal(map[string]string{"error": message})
	http.Error(w, string(msg), code)
}

func respond(w http.ResponseWriter, value interface{}) {
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.Errorf("Cannot write response: %s", err.Error())
	}
}
