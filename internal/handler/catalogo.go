package handler

import (
	"net/http"

	"catalogoservicos/internal/apierror"
	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogoHandler serves the public browsing surface: the aggregated tree,
// parent-scoped lists and the filtered flat catalog.
type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// Arvore devolve a hierarquia completa com contagens por nível.
// @Summary      Árvore agregada do catálogo
// @Tags         catalogo
// @Produce      json
// @Success      200 {array} dto.AreaArvore
// @Router       /v1/catalogo/arvore [get]
func (h *CatalogoHandler) Arvore(c *gin.Context) {
	resp, err := h.svc.CarregarArvore(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) AreaPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.CarregarAreaPorID(c.Request.Context(), id)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) Processos(c *gin.Context) {
	areaID, ok := optionalUUIDQuery(c, "area_id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarProcessos(c.Request.Context(), areaID)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) Subprocessos(c *gin.Context) {
	processoID, ok := optionalUUIDQuery(c, "processo_id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarSubprocessos(c.Request.Context(), processoID)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Servicos devolve o catálogo plano após cascata e filtros.
// @Summary      Catálogo de serviços filtrado
// @Tags         catalogo
// @Produce      json
// @Param        areas query []string false "Áreas selecionadas"
// @Param        processos query []string false "Processos selecionados"
// @Param        subprocessos query []string false "Subprocessos selecionados"
// @Param        produto query string false "Busca por nome"
// @Param        demanda_rotina query string false "demanda | rotina | todos"
// @Param        status query []string false "ativo | inativo"
// @Success      200 {array} dto.ServicoCatalogoItem
// @Router       /v1/catalogo/servicos [get]
func (h *CatalogoHandler) Servicos(c *gin.Context) {
	var filtro dto.FiltroEstado
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarServicosCatalogo(c.Request.Context(), filtro)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// optionalUUIDQuery parses an optional uuid query param; writes the error
// response itself on malformed input.
func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(name+" inválido"))
		return nil, false
	}
	return &id, true
}
