package app

import (
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TranslateRequest carries the QASM source to translate.
type TranslateRequest struct {
	Source string `json:"source" binding:"required"`
}

// TranslationIDValue is the response of a save request.
type TranslationIDValue struct {
	ID string `json:"id"`
}

var internalServerErrorMsg = "Internal Server Error - please contact the administrator"

// HealthHandler is the handler for the /health endpoint.
func (a *appServer) HealthHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving health endpoint")
	c.String(http.StatusOK, "OK")
}

// TranslateHandler is the handler for the /api/translate endpoint.
// Malformed source and decomposition diagnostics both surface as 400
// with the diagnostic text; they are user errors, not server ones.
func (a *appServer) TranslateHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving translate endpoint")

	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tr, err := a.ts.Translate(l, req.Source)
	if err != nil {
		l.Error().Err(err).Msg("translation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tr)
}

// SaveTranslationHandler is the handler for the /api/translations endpoint.
func (a *appServer) SaveTranslationHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving translation save endpoint")

	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Error().Err(err).Msg("binding JSON failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := a.ts.SaveTranslation(l, req.Source)
	if err != nil {
		l.Error().Err(err).Msg("saving translation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.PureJSON(http.StatusOK, TranslationIDValue{ID: id})
}

// GetTranslationHandler is the handler for the /api/translations/:id endpoint.
func (a *appServer) GetTranslationHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving translation get endpoint")

	id := c.Param("id")
	tr, err := a.ts.GetTranslation(l, id)
	if err != nil {
		l.Warn().Err(err).Str("id", id).Msg("translation not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tr)
}

// RenderScheduleHandler is the handler for the /api/translations/:id/img endpoint.
func (a *appServer) RenderScheduleHandler(c *gin.Context) {
	l, err := a.getLoggerFromContext(c)
	if err != nil {
		panic("logger not found in context")
	}
	l.Debug().Msg("serving schedule rendering endpoint")

	id := c.Param("id")
	img, err := a.ts.RenderSchedule(l, id)
	if err != nil {
		l.Warn().Err(err).Str("id", id).Msg("rendering schedule failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "image/png")
	if err := png.Encode(c.Writer, img); err != nil {
		l.Error().Err(err).Msg("encoding PNG failed")
		c.String(http.StatusInternalServerError, internalServerErrorMsg)
		return
	}
	c.Status(http.StatusOK)
}
