package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templateFS embed.FS

type Handler struct {
	board  *Board
	logger *zap.Logger
}

func NewHandler(board *Board, logger *zap.Logger) *Handler {
	return &Handler{board: board, logger: logger}
}

// NewRouter wires the handler onto a gin engine with recovery and request
// logging.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.logger))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/index.html")))

	r.GET("/", h.GetIndex)
	r.GET("/api/articles", h.GetArticles)
	r.GET("/health", h.GetHealth)
	return r
}

func (h *Handler) GetIndex(c *gin.Context) {
	query := c.Query("q")
	snap := h.board.Snapshot(query)

	data := pageData{
		Query:   query,
		Loading: snap.Loading,
		Total:   snap.Total,
		Cards:   snap.Cards,
	}
	if snap.Err != nil {
		data.Failed = true
		data.Error = snap.Err.Error()
	}
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *Handler) GetArticles(c *gin.Context) {
	query := c.Query("q")
	snap := h.board.Snapshot(query)

	res := ArticlesResponse{
		Loading:  snap.Loading,
		Query:    strings.ToLower(query),
		Total:    snap.Total,
		Count:    len(snap.Cards),
		Articles: snap.Cards,
	}
	if snap.Err != nil {
		res.Error = snap.Err.Error()
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
