package handler

import (
	"net/http"

	"catalogoservicos/internal/apierror"
	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/middleware"
	"catalogoservicos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UsuariosHandler covers admin profile management plus the self-service
// /me endpoints.
type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

func (h *UsuariosHandler) Criar(c *gin.Context) {
	var req dto.CriarProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarProfile(c.Request.Context(), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarProfiles(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarProfile(c.Request.Context(), id, req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Desativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.DesativarProfile(c.Request.Context(), id); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UsuariosHandler) Reativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.ReativarProfile(c.Request.Context(), id); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UsuariosHandler) MeuPerfil(c *gin.Context) {
	resp, err := h.svc.ObterMeuPerfil(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) AtualizarMeuPerfil(c *gin.Context) {
	var req dto.AtualizarMeuPerfilRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarMeuPerfil(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
