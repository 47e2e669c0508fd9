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

type SugestoesHandler struct{ svc service.SugestaoService }

func NewSugestoesHandler(svc service.SugestaoService) *SugestoesHandler {
	return &SugestoesHandler{svc: svc}
}

// Criar registra uma sugestão de mudança no catálogo.
// @Summary      Enviar sugestão
// @Tags         sugestoes
// @Accept       json
// @Produce      json
// @Param        body body dto.CriarSugestaoRequest true "Sugestão"
// @Success      201 {object} dto.SugestaoResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/sugestoes [post]
func (h *SugestoesHandler) Criar(c *gin.Context) {
	var req dto.CriarSugestaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar devolve todas as sugestões (admin), opcionalmente por status.
func (h *SugestoesHandler) Listar(c *gin.Context) {
	var filter dto.SugestaoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("status inválido"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMinhas devolve as sugestões do usuário autenticado.
func (h *SugestoesHandler) ListarMinhas(c *gin.Context) {
	resp, err := h.svc.ListarMinhas(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SugestoesHandler) ObterPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resolver aprova ou rejeita uma sugestão pendente. A aprovação aplica a
// mudança no catálogo e o desfecho na mesma transação.
// @Summary      Decidir sugestão
// @Tags         sugestoes
// @Accept       json
// @Produce      json
// @Param        id path string true "ID da sugestão"
// @Param        body body dto.ResolverSugestaoRequest true "Decisão"
// @Success      200 {object} dto.SugestaoResponse
// @Failure      409 {object} apierror.APIError
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/sugestoes/{id}/resolver [post]
func (h *SugestoesHandler) Resolver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ResolverSugestaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Resolver(c.Request.Context(), id, middleware.UserID(c), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
