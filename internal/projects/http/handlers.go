package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/protrack-dev/protrack-backend/internal/auth"
	"github.com/protrack-dev/protrack-backend/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	ownerID := auth.UserID(c)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	upd, fieldErrs := parseWritePayload(c, false)
	if fieldErrs == nil && upd.Title == nil {
		fieldErrs = map[string]string{"title": "required"}
	}
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": fieldErrs})
		return
	}

	in := domain.NewProject{Title: *upd.Title}
	if upd.Description != nil {
		in.Description = *upd.Description
	}
	if upd.StatusSet {
		in.Status = upd.Status
	}

	p, err := h.svc.Create(c.Request.Context(), ownerID, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p.Detail()})
}

func (h *Handler) list(c *gin.Context) {
	ownerID := auth.UserID(c)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	items, err := h.svc.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	views := make([]domain.SummaryView, 0, len(items))
	for i := range items {
		views = append(views, items[i].Summary())
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": views})
}

func (h *Handler) retrieve(c *gin.Context) {
	ownerID := auth.UserID(c)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p.Detail()})
}

func (h *Handler) put(c *gin.Context) {
	h.update(c, false)
}

func (h *Handler) patch(c *gin.Context) {
	h.update(c, true)
}

func (h *Handler) update(c *gin.Context, partial bool) {
	ownerID := auth.UserID(c)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	id, ok := projectID(c)
	if !ok {
		return
	}

	upd, fieldErrs := parseWritePayload(c, !partial)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "errors": fieldErrs})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), ownerID, id, upd)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p.Detail()})
}

func (h *Handler) delete(c *gin.Context) {
	ownerID := auth.UserID(c)
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), ownerID, id); err != nil {
		respondLookupError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// projectID parses the :id path param. A non-numeric id gets the same 404
// as a missing row.
func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return 0, false
	}
	return id, true
}

func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
