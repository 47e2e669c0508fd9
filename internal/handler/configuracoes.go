package handler

import (
	"net/http"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/middleware"
	"catalogoservicos/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracoesHandler struct{ svc service.ConfiguracaoService }

func NewConfiguracoesHandler(svc service.ConfiguracaoService) *ConfiguracoesHandler {
	return &ConfiguracoesHandler{svc: svc}
}

// Obter é público: a tela inicial lê nome do portal e mensagem de boas-vindas.
func (h *ConfiguracoesHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Obter(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConfiguracoesHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarConfiguracaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
