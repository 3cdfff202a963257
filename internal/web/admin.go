package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tauqeerkhan/portfolio/internal/analytics"
)

func (s *Server) adminRoutes() {
	r := s.engine

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"tracking":  s.opts.Tracker != nil,
			"retention": retentionText(s.opts.Retention),
		})
	})
	// Visitors can erase what was recorded for their own address.
	r.POST("/privacy/delete-my-data", s.deleteMyData)

	if s.opts.Admin == nil {
		return
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		s.log.Info("admin logout", zap.String("visitor", s.hashIP(c)))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.opts.Admin.Middleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.stats(c)
		if err != nil {
			s.log.Error("failed to load admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.stats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		var visitors []analytics.Visitor
		if s.opts.Tracker != nil {
			var err error
			visitors, err = s.opts.Tracker.Recent(c.Request.Context(), 200)
			if err != nil {
				s.log.Error("failed to load visitors", zap.Error(err))
				c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load visitors"})
				return
			}
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"visitors": visitors})
	})

	admin.GET("/messages", func(c *gin.Context) {
		if s.opts.Inbox == nil {
			c.HTML(http.StatusOK, "admin-messages.html", gin.H{})
			return
		}
		msgs, err := s.opts.Inbox.List(c.Request.Context(), 200)
		if err != nil {
			s.log.Error("failed to load messages", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load messages"})
			return
		}
		c.HTML(http.StatusOK, "admin-messages.html", gin.H{"messages": msgs})
	})

	admin.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		if s.opts.Tracker == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Visitor tracking is disabled", "deleted": 0})
			return
		}
		ctx := c.Request.Context()
		if ip := c.PostForm("ip"); ip != "" {
			n, err := s.opts.Tracker.DeleteVisitor(ctx, ip)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete visitor data"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Visitor data deleted", "deleted": n})
			return
		}
		n, err := s.opts.Tracker.Cleanup(ctx, s.opts.Retention)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup completed", "deleted": n})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.stats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", zap.String("visitor", s.hashIP(c)))
		c.JSON(http.StatusOK, stats)
	})
}

func (s *Server) adminLogin(c *gin.Context) {
	auth := s.opts.Admin
	if !auth.CheckCredentials(c.PostForm("username"), c.PostForm("password")) {
		s.log.Warn("failed admin login attempt", zap.String("visitor", s.hashIP(c)))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"title": "Admin Login", "error": "Invalid credentials"})
		return
	}

	token, err := auth.Issue(c.PostForm("username"))
	if err != nil {
		s.log.Error("failed to issue admin session", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Login failed"})
		return
	}
	c.SetCookie(adminCookie, token, int(auth.TTL().Seconds()), "/admin", "", c.Request.TLS != nil, true)
	s.log.Info("admin login successful", zap.String("visitor", s.hashIP(c)))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) deleteMyData(c *gin.Context) {
	if s.opts.Tracker == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No visitor data is recorded", "deleted": 0})
		return
	}
	n, err := s.opts.Tracker.DeleteVisitor(c.Request.Context(), c.ClientIP())
	if err != nil {
		s.log.Error("failed to delete visitor data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete your data"})
		return
	}
	msg := "Your visit history has been deleted"
	if c.GetHeader("HX-Request") != "" {
		c.String(http.StatusOK, msg)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "deleted": n})
}

func retentionText(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days == 1 {
		return "1 day"
	}
	if days > 1 {
		return fmt.Sprintf("%d days", days)
	}
	return d.String()
}

// stats gathers dashboard numbers. Missing components count as zero.
func (s *Server) stats(c *gin.Context) (*analytics.Stats, error) {
	ctx := c.Request.Context()
	stats := &analytics.Stats{}
	if s.opts.Tracker != nil {
		var err error
		if stats, err = s.opts.Tracker.Stats(ctx); err != nil {
			return nil, err
		}
	}
	if s.opts.Inbox != nil {
		n, err := s.opts.Inbox.Count(ctx)
		if err != nil {
			return nil, err
		}
		stats.Messages = n
	}
	return stats, nil
}

func (s *Server) hashIP(c *gin.Context) string {
	if s.opts.Tracker == nil {
		return ""
	}
	return s.opts.Tracker.HashIP(c.ClientIP())
}
