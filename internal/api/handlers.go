package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"siteforge_server/internal/assets"
	"siteforge_server/internal/bundle"
	"siteforge_server/internal/parser"
	"siteforge_server/internal/preview"
	"siteforge_server/internal/session"
	"siteforge_server/internal/types"
)

// ProjectGenerator is the generation collaborator: prompt in, raw sectioned
// response text out.
type ProjectGenerator interface {
	GenerateProject(ctx context.Context, userPrompt string) (string, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator ProjectGenerator
	store     *session.Store
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator ProjectGenerator, store *session.Store) *APIHandler {
	return &APIHandler{
		generator: generator,
		store:     store,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	// SessionID regenerates an existing session in place; empty starts a
	// fresh one.
	SessionID string `json:"sessionId"`
}

type FileInfo struct {
	Name string `json:"name"`
	Lang string `json:"lang"`
}

type GenerateResponse struct {
	SessionID string     `json:"sessionId"`
	Files     []FileInfo `json:"files"`
}

type ProjectResponse struct {
	SessionID string     `json:"sessionId"`
	Header    string     `json:"header"`
	Structure string     `json:"structure"`
	Notes     string     `json:"notes"`
	Files     []FileInfo `json:"files"`
}

func fileInfos(files []types.CodeFile) []FileInfo {
	infos := make([]FileInfo, len(files))
	for i, f := range files {
		infos[i] = FileInfo{Name: f.Name, Lang: f.Lang}
	}
	return infos
}

// --- API Handlers ---

// POST /project/generate
func (h *APIHandler) GenerateProject(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// One generation at a time per session; a second submission before the
	// first settles is refused, never queued.
	if err := h.store.Acquire(sessionID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A generation is already running for this session"})
		return
	}
	defer h.store.Release(sessionID)

	log.Printf("Received generation request for session %s", sessionID)

	raw, err := h.generator.GenerateProject(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Error generating project for session %s: %v", sessionID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate project"})
		return
	}

	doc, err := parser.ParseResponse(raw)
	if err != nil {
		// Zero files is surfaced exactly like a failed generation call,
		// just with a status that says the response was unusable.
		log.Printf("Error decomposing model response for session %s: %v", sessionID, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Model response contained no usable files"})
		return
	}

	sess := h.store.Put(sessionID, doc)
	log.Printf("Generation successful for session %s: %d files", sessionID, len(doc.Files))
	c.JSON(http.StatusCreated, GenerateResponse{
		SessionID: sess.ID,
		Files:     fileInfos(doc.Files),
	})
}

// GET /project/:id
func (h *APIHandler) GetProject(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}
	doc := sess.Document
	c.JSON(http.StatusOK, ProjectResponse{
		SessionID: sess.ID,
		Header:    doc.Header,
		Structure: doc.Structure,
		Notes:     doc.Notes,
		Files:     fileInfos(doc.Files),
	})
}

// GET /project/:id/files/*name
func (h *APIHandler) GetProjectFile(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}
	name := strings.TrimPrefix(c.Param("name"), "/")
	file, ok := sess.Document.FileNamed(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No file named %q in this project", name)})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(file.Content))
}

// GET /project/:id/preview
func (h *APIHandler) PreviewProject(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}

	body := preview.BuildPreview(sess.Document, sess.Arena.Handles())

	// Scripts may run but the document gets an opaque origin: no access to
	// this server's origin, storage or cookies.
	c.Header("Content-Security-Policy", preview.SandboxPolicy)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

// GET /project/:id/assets/*name
func (h *APIHandler) GetProjectAsset(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}

	name := strings.TrimPrefix(c.Param("name"), "/")
	asset, err := sess.Arena.Lookup(name, c.Query("v"))
	switch {
	case errors.Is(err, assets.ErrStaleHandle):
		c.JSON(http.StatusGone, gin.H{"error": "Asset handle has been revoked"})
		return
	case errors.Is(err, assets.ErrUnknownAsset):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No asset named %q", name)})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve asset"})
		return
	}
	c.Data(http.StatusOK, asset.MimeType, asset.Content)
}

// GET /project/:id/download
func (h *APIHandler) DownloadProject(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}

	// The buffer exists only for this handoff and dies with the handler.
	var buf bytes.Buffer
	if err := bundle.Export(&buf, sess.Document.Files); err != nil {
		log.Printf("Error exporting archive for session %s: %v", sess.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build project archive"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", bundle.ArchiveName))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// DELETE /project/:id
func (h *APIHandler) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	log.Printf("Deleted session %s and revoked its assets", id)
	c.Status(http.StatusNoContent)
}

func (h *APIHandler) lookupSession(c *gin.Context) (session.Session, bool) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return session.Session{}, false
	}
	return sess, true
}
