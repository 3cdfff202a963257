package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/chat"
	"github.com/tauqeerkhan/portfolio/internal/contact"
	"github.com/tauqeerkhan/portfolio/internal/content"
	"github.com/tauqeerkhan/portfolio/internal/metrics"
	"github.com/tauqeerkhan/portfolio/internal/tourws"
)

func (s *Server) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "not found")
}

func (s *Server) index(c *gin.Context) {
	v, ok := s.variant(c)
	if !ok {
		s.notFound(c)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    v.Owner + " | " + v.Role,
		"variant":  v,
		"variants": content.Keys(),
	})
}

// section renders one section as an HTMX fragment.
func (s *Server) section(c *gin.Context) {
	v, ok := s.variant(c)
	if !ok {
		s.notFound(c)
		return
	}
	sec, ok := v.Section(c.Param("name"))
	if !ok {
		s.notFound(c)
		return
	}
	c.HTML(http.StatusOK, "section.html", gin.H{"variant": v, "section": sec})
}

func (s *Server) contactForm(c *gin.Context) {
	v, ok := s.variant(c)
	if !ok {
		s.notFound(c)
		return
	}
	c.HTML(http.StatusOK, "contact.html", gin.H{"title": "Contact Me", "variant": v})
}

func (s *Server) submitContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": contact.MsgInvalid})
		return
	}

	res := s.opts.Contact.Submit(c.Request.Context(), form)
	status := http.StatusOK
	switch {
	case res.Success:
		metrics.ContactSubmissions.WithLabelValues("saved").Inc()
	case res.Errors != nil:
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		status = http.StatusUnprocessableEntity
	default:
		metrics.ContactSubmissions.WithLabelValues("store_error").Inc()
		status = http.StatusInternalServerError
	}

	if wantsJSON(c) {
		c.JSON(status, res)
		return
	}
	// HTMX only swaps 2xx responses, so fragments are always 200.
	if res.Success {
		c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": res.Message})
		return
	}
	c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": res.Message, "fields": res.Errors, "form": form})
}

type chatRequest struct {
	Query   string `form:"query" json:"query"`
	Variant string `form:"variant" json:"variant"`
}

func (s *Server) askChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": chat.MsgFailed})
		return
	}
	key := req.Variant
	if key == "" {
		key = s.opts.DefaultVariant
	}
	v, err := content.Lookup(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	res := s.opts.Chat.Ask(c.Request.Context(), chat.Persona{Name: v.Owner, Biography: v.Biography}, req.Query)
	status := http.StatusOK
	switch {
	case res.Errors != nil:
		status = http.StatusUnprocessableEntity
	case res.Message != "":
		status = http.StatusBadGateway
		s.log.Warn("chat request failed", zap.String("variant", v.Key))
	}

	if wantsJSON(c) {
		c.JSON(status, res)
		return
	}
	c.HTML(http.StatusOK, "chat-response.html", gin.H{"query": req.Query, "result": res})
}

func (s *Server) tourSteps(c *gin.Context) {
	v, ok := s.variant(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown variant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"variant": v.Key,
		"steps":   tourws.StepViews(v.Steps),
	})
}
