package app

import (
	"net/http"

	"github.com/kegliz/qspc/internal/server/router"
)

func (a *appServer) routes() []*router.Route {
	return []*router.Route{
		{
			Name:        "health",
			Method:      http.MethodGet,
			Pattern:     "/health",
			HandlerFunc: a.HealthHandler,
		},
		{
			Name:        "api.translate",
			Method:      http.MethodPost,
			Pattern:     "/api/translate",
			HandlerFunc: a.TranslateHandler,
		},
		{
			Name:        "api.translations.save",
			Method:      http.MethodPost,
			Pattern:     "/api/translations",
			HandlerFunc: a.SaveTranslationHandler,
		},
		{
			Name:        "api.translations.get",
			Method:      http.MethodGet,
			Pattern:     "/api/translations/:id",
			HandlerFunc: a.GetTranslationHandler,
		},
		{
			Name:        "api.translations.render",
			Method:      http.MethodGet,
			Pattern:     "/api/translations/:id/img",
			HandlerFunc: a.RenderScheduleHandler,
		},
	}
}
