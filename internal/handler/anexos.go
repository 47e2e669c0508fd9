package handler

import (
	"net/http"

	"catalogoservicos/internal/apierror"
	"catalogoservicos/internal/middleware"
	"catalogoservicos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnexosHandler struct{ svc service.AnexoService }

func NewAnexosHandler(svc service.AnexoService) *AnexosHandler {
	return &AnexosHandler{svc: svc}
}

// Upload recebe multipart/form-data com o campo "arquivo" e exatamente um
// dos campos "servico_id" ou "sugestao_id".
// @Summary      Enviar anexo
// @Tags         anexos
// @Accept       multipart/form-data
// @Produce      json
// @Param        arquivo formData file true "Arquivo"
// @Param        servico_id formData string false "Serviço vinculado"
// @Param        sugestao_id formData string false "Sugestão vinculada"
// @Success      201 {object} dto.AnexoResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/anexos [post]
func (h *AnexosHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("campo 'arquivo' ausente"))
		return
	}

	var servicoID, sugestaoID *uuid.UUID
	if raw := c.PostForm("servico_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("servico_id inválido"))
			return
		}
		servicoID = &id
	}
	if raw := c.PostForm("sugestao_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("sugestao_id inválido"))
			return
		}
		sugestaoID = &id
	}

	resp, err := h.svc.Upload(c.Request.Context(), middleware.UserID(c), servicoID, sugestaoID, header)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AnexosHandler) ListarPorServico(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarPorServico(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AnexosHandler) ListarPorSugestao(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarPorSugestao(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Download serve o arquivo original com o nome de envio.
func (h *AnexosHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	path, nome, err := h.svc.CaminhoArquivo(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.FileAttachment(path, nome)
}

func (h *AnexosHandler) Remover(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Remover(c.Request.Context(), middleware.UserID(c), id); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
