package service

import (
	"context"
	"testing"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogoFixture seeds a two-area hierarchy across the linked stubs.
type catalogoFixture struct {
	areas        *stubAreaRepo
	processos    *stubProcessoRepo
	subprocessos *stubSubprocessoRepo
	servicos     *stubServicoRepo

	rh, ti          uuid.UUID
	onboardingSub   uuid.UUID
	equipamentosSub uuid.UUID
	gestaoPessoas   uuid.UUID
	suporteProcesso uuid.UUID
}

func newCatalogoFixture(t *testing.T) *catalogoFixture {
	t.Helper()
	ctx := context.Background()

	f := &catalogoFixture{areas: newStubAreaRepo()}
	f.processos = newStubProcessoRepo(f.areas)
	f.subprocessos = newStubSubprocessoRepo(f.processos)
	f.servicos = newStubServicoRepo(f.subprocessos)

	rh := &model.Area{Nome: "Recursos Humanos", Ativo: true}
	ti := &model.Area{Nome: "Tecnologia", Ativo: true}
	require.NoError(t, f.areas.Criar(ctx, rh))
	require.NoError(t, f.areas.Criar(ctx, ti))
	f.rh, f.ti = rh.ID, ti.ID

	gestao := &model.Processo{Nome: "Gestão de Pessoas", AreaID: rh.ID, Ativo: true}
	suporte := &model.Processo{Nome: "Suporte", AreaID: ti.ID, Ativo: true}
	require.NoError(t, f.processos.Criar(ctx, gestao))
	require.NoError(t, f.processos.Criar(ctx, suporte))
	f.gestaoPessoas, f.suporteProcesso = gestao.ID, suporte.ID

	onboarding := &model.Subprocesso{Nome: "Onboarding", ProcessoID: gestao.ID, Ativo: true}
	equipamentos := &model.Subprocesso{Nome: "Equipamentos", ProcessoID: suporte.ID, Ativo: true}
	require.NoError(t, f.subprocessos.Criar(ctx, onboarding))
	require.NoError(t, f.subprocessos.Criar(ctx, equipamentos))
	f.onboardingSub, f.equipamentosSub = onboarding.ID, equipamentos.ID

	for _, sv := range []*model.Servico{
		{Nome: "Solicitação de Notebook", SubprocessoID: onboarding.ID, DemandaRotina: "demanda", Status: "ativo", Versao: 1, Ativo: true},
		{Nome: "Emissão de Crachá", SubprocessoID: onboarding.ID, DemandaRotina: "rotina", Status: "ativo", Versao: 1, Ativo: true},
		{Nome: "Troca de Teclado", SubprocessoID: equipamentos.ID, DemandaRotina: "demanda", Status: "ativo", Versao: 1, Ativo: true},
	} {
		require.NoError(t, f.servicos.Criar(ctx, sv))
	}
	return f
}

func (f *catalogoFixture) service() CatalogoService {
	return NewCatalogoService(f.areas, f.processos, f.subprocessos, f.servicos, nil, 0)
}

func TestCarregarArvoreAgregaContagens(t *testing.T) {
	f := newCatalogoFixture(t)

	arvore, err := f.service().CarregarArvore(context.Background())
	require.NoError(t, err)
	require.Len(t, arvore, 2)

	// name-ordered: Recursos Humanos before Tecnologia
	rh := arvore[0]
	assert.Equal(t, "Recursos Humanos", rh.Nome)
	assert.Equal(t, 2, rh.QuantidadeServicos)
	require.Len(t, rh.Processos, 1)
	assert.Equal(t, 2, rh.Processos[0].QuantidadeServicos)
	require.Len(t, rh.Processos[0].Subprocessos, 1)
	assert.Equal(t, 2, rh.Processos[0].Subprocessos[0].QuantidadeServicos)

	ti := arvore[1]
	assert.Equal(t, 1, ti.QuantidadeServicos)

	// leaf items carry the denormalized ancestor names
	item := rh.Processos[0].Subprocessos[0].Servicos[0]
	assert.Equal(t, "Recursos Humanos", item.Area)
	assert.Equal(t, "Gestão de Pessoas", item.Processo)
	assert.Equal(t, "Onboarding", item.Subprocesso)
}

func TestCarregarArvoreIgnoraInativos(t *testing.T) {
	f := newCatalogoFixture(t)
	require.NoError(t, f.areas.Desativar(context.Background(), f.ti))

	arvore, err := f.service().CarregarArvore(context.Background())
	require.NoError(t, err)
	require.Len(t, arvore, 1)
	assert.Equal(t, "Recursos Humanos", arvore[0].Nome)
}

func TestCarregarAreaPorIDInativaNaoEncontrada(t *testing.T) {
	f := newCatalogoFixture(t)
	ctx := context.Background()
	require.NoError(t, f.areas.Desativar(ctx, f.rh))

	_, err := f.service().CarregarAreaPorID(ctx, f.rh)
	var naoEncontrado *NaoEncontradoError
	assert.ErrorAs(t, err, &naoEncontrado)

	_, err = f.service().CarregarAreaPorID(ctx, uuid.New())
	assert.ErrorAs(t, err, &naoEncontrado)
}

func TestListarServicosCatalogoComFiltro(t *testing.T) {
	f := newCatalogoFixture(t)

	out, err := f.service().ListarServicosCatalogo(context.Background(), dto.FiltroEstado{Produto: "notebook"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Solicitação de Notebook", out[0].Nome)
	assert.Equal(t, "Recursos Humanos", out[0].Area)
}

func TestListarServicosCatalogoCascataLimpaProcessoOrfao(t *testing.T) {
	f := newCatalogoFixture(t)

	// Suporte belongs to Tecnologia; with only Recursos Humanos selected the
	// orphaned processo selection is dropped, leaving the RH services.
	out, err := f.service().ListarServicosCatalogo(context.Background(), dto.FiltroEstado{
		Areas:     []string{"Recursos Humanos"},
		Processos: []string{"Suporte"},
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestListarProcessosComNomesDaArea(t *testing.T) {
	f := newCatalogoFixture(t)

	out, err := f.service().ListarProcessos(context.Background(), &f.rh)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Gestão de Pessoas", out[0].Nome)
	assert.Equal(t, "Recursos Humanos", out[0].AreaNome)
}

func TestListarSubprocessosComAncestrais(t *testing.T) {
	f := newCatalogoFixture(t)

	out, err := f.service().ListarSubprocessos(context.Background(), &f.suporteProcesso)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Equipamentos", out[0].Nome)
	assert.Equal(t, "Suporte", out[0].ProcessoNome)
	assert.Equal(t, "Tecnologia", out[0].AreaNome)
}
