package handler

import (
	"fmt"
	"net/http"

	"catalogoservicos/internal/apierror"
	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/infra"
	"catalogoservicos/internal/middleware"
	"catalogoservicos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServicosHandler struct{ svc service.ServicoService }

func NewServicosHandler(svc service.ServicoService) *ServicosHandler {
	return &ServicosHandler{svc: svc}
}

func (h *ServicosHandler) Criar(c *gin.Context) {
	var req dto.CriarServicoRequest
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

func (h *ServicosHandler) ObterPorID(c *gin.Context) {
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

func (h *ServicosHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarServicoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServicosHandler) Desativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), middleware.UserID(c), id); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServicosHandler) Reativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Reativar(c.Request.Context(), middleware.UserID(c), id); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Historico lista as versões anteriores de um serviço, mais recente primeiro.
// @Summary      Histórico de versões de um serviço
// @Tags         servicos
// @Produce      json
// @Param        id path string true "ID do serviço"
// @Success      200 {array} dto.ServicoHistoricoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/servicos/{id}/historico [get]
func (h *ServicosHandler) Historico(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarHistorico(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ficha gera a ficha do serviço em PDF para download.
// @Summary      Ficha do serviço em PDF
// @Tags         servicos
// @Produce      application/pdf
// @Param        id path string true "ID do serviço"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/servicos/{id}/ficha [get]
func (h *ServicosHandler) Ficha(c *gin.Context) {
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
	pdf, err := infra.GerarFichaServico(resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar PDF"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ficha-%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
