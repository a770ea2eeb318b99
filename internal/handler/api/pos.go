package api

import (
	"log/slog"
	"net/http"
	"strconv"

	reqdto "campuscoffee/internal/handler/dto/request"
	resdto "campuscoffee/internal/handler/dto/response"
	"campuscoffee/internal/handler/httperr"
	"campuscoffee/internal/usecase/commands"
	"campuscoffee/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PosHandler struct {
	cmds commands.PosCommands
	q    queries.PosQueries
}

func NewPosHandler(cmds commands.PosCommands, q queries.PosQueries) *PosHandler {
	return &PosHandler{cmds: cmds, q: q}
}

// @Summary Register POS
// @Description Register a new point of sale (admin only)
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PosRequest true "Register POS request"
// @Success 201 {object} resdto.PosResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /pos [post]
func (h *PosHandler) Create(c *gin.Context) {
	var req reqdto.PosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		abortCommandError(c, err, "Register pos failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.PosID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pos", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPosView(view))
}

// @Summary Update POS
// @Description Update an existing point of sale (admin only)
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "POS ID"
// @Param request body reqdto.PosRequest true "Update POS request"
// @Success 200 {object} resdto.PosResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pos/{id} [put]
func (h *PosHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.PosRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		abortCommandError(c, err, "Update pos failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pos", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPosView(view))
}

// @Summary Get POS
// @Description Get a point of sale by ID
// @Tags pos
// @Produce json
// @Param id path string true "POS ID"
// @Success 200 {object} resdto.PosResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pos/{id} [get]
func (h *PosHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPosView(view))
}

// @Summary List POS
// @Description List points of sale with keyset pagination
// @Tags pos
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.PosResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /pos [get]
func (h *PosHandler) List(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		slog.Error("list pos failed", "error", err)
		abortCommandError(c, err, "List pos failed")
		return
	}
	resp := gin.H{"pos": resdto.FromPosList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}
