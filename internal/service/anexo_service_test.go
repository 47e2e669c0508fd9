package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"catalogoservicos/internal/dto"
	"catalogoservicos/internal/infra"
	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arquivoUpload builds a real multipart.FileHeader the way gin hands it to
// the handler.
func arquivoUpload(t *testing.T, nome string, conteudo []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("arquivo", nome)
	require.NoError(t, err)
	_, err = fw.Write(conteudo)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	headers := form.File["arquivo"]
	require.Len(t, headers, 1)
	return headers[0]
}

type anexoFixture struct {
	*catalogoFixture
	anexos    *stubAnexoRepo
	sugestoes *stubSugestaoRepo
	svc       AnexoService

	dono       uuid.UUID
	sugestaoID uuid.UUID
	servicoID  uuid.UUID
}

func newAnexoFixture(t *testing.T) *anexoFixture {
	t.Helper()
	ctx := context.Background()

	f := &anexoFixture{
		catalogoFixture: newCatalogoFixture(t),
		anexos:          newStubAnexoRepo(),
		sugestoes:       newStubSugestaoRepo(),
		dono:            uuid.New(),
	}

	sug := &model.Sugestao{
		Tipo:      dto.TipoNovo,
		Status:    dto.StatusPendente,
		Escopo:    dto.EscopoArea,
		Payload:   `{"escopo":"area","modo":"criacao","nome":"Jurídico"}`,
		CriadoPor: f.dono,
	}
	require.NoError(t, f.sugestoes.Criar(ctx, sug))
	f.sugestaoID = sug.ID

	sv := &model.Servico{Nome: "Emissão de Crachá Extra", SubprocessoID: f.onboardingSub, DemandaRotina: "demanda", Status: "ativo", Versao: 1, Ativo: true}
	require.NoError(t, f.servicos.Criar(ctx, sv))
	f.servicoID = sv.ID

	f.svc = NewAnexoService(f.anexos, f.servicos, f.sugestoes, infra.NewFileStorage(t.TempDir()), 10<<20, nil)
	return f
}

func TestUploadAnexoExigeVinculoExclusivo(t *testing.T) {
	f := newAnexoFixture(t)
	ctx := context.Background()
	arquivo := arquivoUpload(t, "doc.pdf", []byte("conteudo"))

	var validacao *ValidacaoError

	_, err := f.svc.Upload(ctx, f.dono, nil, nil, arquivo)
	require.ErrorAs(t, err, &validacao)

	_, err = f.svc.Upload(ctx, f.dono, &f.servicoID, &f.sugestaoID, arquivo)
	assert.ErrorAs(t, err, &validacao)
}

func TestUploadAnexoSugestaoInexistente(t *testing.T) {
	f := newAnexoFixture(t)
	fantasma := uuid.New()

	_, err := f.svc.Upload(context.Background(), f.dono, nil, &fantasma,
		arquivoUpload(t, "doc.pdf", []byte("conteudo")))

	var naoEncontrado *NaoEncontradoError
	require.ErrorAs(t, err, &naoEncontrado)
	assert.Equal(t, "Sugestão", naoEncontrado.Entidade)
}

func TestUploadAnexoSugestaoDeOutroUsuario(t *testing.T) {
	f := newAnexoFixture(t)

	_, err := f.svc.Upload(context.Background(), uuid.New(), nil, &f.sugestaoID,
		arquivoUpload(t, "doc.pdf", []byte("conteudo")))

	assert.ErrorIs(t, err, ErrPermissaoNegada)
}

func TestUploadAnexoSugestaoResolvida(t *testing.T) {
	f := newAnexoFixture(t)
	ctx := context.Background()

	sug, err := f.sugestoes.ObterPorID(ctx, f.sugestaoID)
	require.NoError(t, err)
	sug.Status = dto.StatusAprovada
	require.NoError(t, f.sugestoes.AtualizarTx(nil, sug))

	_, err = f.svc.Upload(ctx, f.dono, nil, &f.sugestaoID,
		arquivoUpload(t, "doc.pdf", []byte("conteudo")))

	assert.ErrorIs(t, err, ErrSugestaoJaResolvida)
}

func TestUploadAnexoExtensaoNaoPermitida(t *testing.T) {
	f := newAnexoFixture(t)

	_, err := f.svc.Upload(context.Background(), f.dono, nil, &f.sugestaoID,
		arquivoUpload(t, "script.exe", []byte("MZ")))

	var validacao *ValidacaoError
	require.ErrorAs(t, err, &validacao)
	assert.Contains(t, validacao.Campos, "arquivo")
}

func TestUploadAnexoTamanhoExcedido(t *testing.T) {
	f := newAnexoFixture(t)
	pequeno := NewAnexoService(f.anexos, f.servicos, f.sugestoes, infra.NewFileStorage(t.TempDir()), 4, nil)

	_, err := pequeno.Upload(context.Background(), f.dono, nil, &f.sugestaoID,
		arquivoUpload(t, "doc.pdf", []byte("muito maior que o limite")))

	var validacao *ValidacaoError
	assert.ErrorAs(t, err, &validacao)
}

func TestUploadAnexoSugestaoPendenteDoCriador(t *testing.T) {
	f := newAnexoFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Upload(ctx, f.dono, nil, &f.sugestaoID,
		arquivoUpload(t, "justificativa.pdf", []byte("conteudo")))
	require.NoError(t, err)
	require.NotNil(t, resp.SugestaoID)
	assert.Equal(t, f.sugestaoID, *resp.SugestaoID)
	assert.Nil(t, resp.ServicoID)

	list, err := f.svc.ListarPorSugestao(ctx, f.sugestaoID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "justificativa.pdf", list[0].NomeArquivo)
}

func TestUploadAnexoServicoAtivo(t *testing.T) {
	f := newAnexoFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Upload(ctx, f.dono, &f.servicoID, nil,
		arquivoUpload(t, "manual.pdf", []byte("conteudo")))
	require.NoError(t, err)
	require.NotNil(t, resp.ServicoID)
	assert.Equal(t, f.servicoID, *resp.ServicoID)

	// inactive target behaves like a missing one
	require.NoError(t, f.servicos.Desativar(ctx, f.servicoID))
	_, err = f.svc.Upload(ctx, f.dono, &f.servicoID, nil,
		arquivoUpload(t, "manual2.pdf", []byte("conteudo")))
	var naoEncontrado *NaoEncontradoError
	assert.ErrorAs(t, err, &naoEncontrado)
}
