//go:build integration

package e2e

// End-to-end integration tests for the services catalog using real
// Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - login → suggest a new area → approve → area visible in the public tree
//   - reject requires an admin comment; rejection applies nothing
//   - double decision on the same suggestion returns 409
//   - admin service edit bumps the version and records history
//   - cascading filters on the public catalog listing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalogoservicos/internal/config"
	"catalogoservicos/internal/infra"
	"catalogoservicos/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server     *httptest.Server
	adminToken string
	userToken  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("catalogo_test"),
		tcPostgres.WithUsername("catalogo"),
		tcPostgres.WithPassword("catalogo"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                    8000,
		Env:                     "test",
		JWTSecret:               "test-secret-key",
		JWTExpirationHours:      8,
		JWTRefreshHours:         24,
		DatabaseURL:             pgURL,
		RedisURL:                rdURL,
		WorkerPoolSize:          1,
		UploadStoragePath:       t.TempDir(),
		UploadMaxBytes:          10 << 20,
		CatalogoCacheTTLMinutes: 5,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	require.NoError(t, infra.RunMigrations(db))

	seedUsuario(t, db, "Admin E2E", "admin@e2e.test", "catalogo2026", "superadministrador")
	seedUsuario(t, db, "Colaborador E2E", "colab@e2e.test", "catalogo2026", "usuario")

	r := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{
		server:     srv,
		adminToken: login(t, srv, "admin@e2e.test", "catalogo2026"),
		userToken:  login(t, srv, "colab@e2e.test", "catalogo2026"),
	}
}

func seedUsuario(t *testing.T, db *gorm.DB, nome, email, senha, perfil string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), 12)
	require.NoError(t, err)
	err = db.Exec(`INSERT INTO profiles (nome, email, senha_hash, perfil, ativo)
		VALUES (?, ?, ?, ?, true)
		ON CONFLICT (email) DO NOTHING`, nome, email, string(hash), perfil).Error
	require.NoError(t, err)
}

func login(t *testing.T, srv *httptest.Server, email, senha string) string {
	t.Helper()
	resp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": email, "senha": senha}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Full workflow: a collaborator suggests a new area, an admin approves it and
// the area shows up in the public tree.
func TestE2E_SugestaoAprovadaEntraNoCatalogo(t *testing.T) {
	env := setupTestEnv(t)

	sugResp := do(t, env.server, "POST", "/v1/sugestoes",
		jsonBody(t, map[string]any{
			"tipo": "novo",
			"payload": map[string]any{
				"escopo": "area",
				"modo":   "criacao",
				"nome":   "Jurídico",
			},
			"justificativa": "Área ausente do portal",
		}), env.userToken)
	require.Equal(t, http.StatusCreated, sugResp.StatusCode)
	var sug struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, sugResp, &sug)
	assert.Equal(t, "pendente", sug.Status)

	// collaborator cannot decide
	forbResp := do(t, env.server, "POST", "/v1/sugestoes/"+sug.ID+"/resolver",
		jsonBody(t, map[string]any{"decisao": "aprovada"}), env.userToken)
	require.Equal(t, http.StatusForbidden, forbResp.StatusCode)
	forbResp.Body.Close()

	resResp := do(t, env.server, "POST", "/v1/sugestoes/"+sug.ID+"/resolver",
		jsonBody(t, map[string]any{"decisao": "aprovada"}), env.adminToken)
	require.Equal(t, http.StatusOK, resResp.StatusCode)
	var resolvida struct {
		Status string `json:"status"`
	}
	decodeJSON(t, resResp, &resolvida)
	assert.Equal(t, "aprovada", resolvida.Status)

	// the new area is publicly visible, no auth needed
	arvoreResp := do(t, env.server, "GET", "/v1/catalogo/arvore", nil, "")
	require.Equal(t, http.StatusOK, arvoreResp.StatusCode)
	var arvore []struct {
		Nome string `json:"nome"`
	}
	decodeJSON(t, arvoreResp, &arvore)
	nomes := make([]string, 0, len(arvore))
	for _, a := range arvore {
		nomes = append(nomes, a.Nome)
	}
	assert.Contains(t, nomes, "Jurídico")
}

// Rejection demands a comment; once given, nothing is applied to the catalog.
func TestE2E_RejeicaoExigeComentario(t *testing.T) {
	env := setupTestEnv(t)

	sugResp := do(t, env.server, "POST", "/v1/sugestoes",
		jsonBody(t, map[string]any{
			"tipo":    "novo",
			"payload": map[string]any{"escopo": "area", "modo": "criacao", "nome": "Compras"},
		}), env.userToken)
	require.Equal(t, http.StatusCreated, sugResp.StatusCode)
	var sug struct {
		ID string `json:"id"`
	}
	decodeJSON(t, sugResp, &sug)

	semComentario := do(t, env.server, "POST", "/v1/sugestoes/"+sug.ID+"/resolver",
		jsonBody(t, map[string]any{"decisao": "rejeitada"}), env.adminToken)
	require.Equal(t, http.StatusUnprocessableEntity, semComentario.StatusCode)
	semComentario.Body.Close()

	comComentario := do(t, env.server, "POST", "/v1/sugestoes/"+sug.ID+"/resolver",
		jsonBody(t, map[string]any{
			"decisao":          "rejeitada",
			"comentario_admin": "fora do escopo do portal",
		}), env.adminToken)
	require.Equal(t, http.StatusOK, comComentario.StatusCode)
	comComentario.Body.Close()

	arvoreResp := do(t, env.server, "GET", "/v1/catalogo/arvore", nil, "")
	require.Equal(t, http.StatusOK, arvoreResp.StatusCode)
	var arvore []struct {
		Nome string `json:"nome"`
	}
	decodeJSON(t, arvoreResp, &arvore)
	for _, a := range arvore {
		assert.NotEqual(t, "Compras", a.Nome)
	}

	// a second decision on the same suggestion conflicts
	duplicada := do(t, env.server, "POST", "/v1/sugestoes/"+sug.ID+"/resolver",
		jsonBody(t, map[string]any{"decisao": "aprovada"}), env.adminToken)
	assert.Equal(t, http.StatusConflict, duplicada.StatusCode)
	duplicada.Body.Close()
}

// Admin builds the hierarchy, edits a service and the edit is versioned.
func TestE2E_EdicaoDeServicoVersiona(t *testing.T) {
	env := setupTestEnv(t)

	areaID := criarEntidade(t, env, "/v1/areas", map[string]any{"nome": "Tecnologia"})
	procID := criarEntidade(t, env, "/v1/processos", map[string]any{"nome": "Suporte", "area_id": areaID})
	subID := criarEntidade(t, env, "/v1/subprocessos", map[string]any{"nome": "Equipamentos", "processo_id": procID})
	svID := criarEntidade(t, env, "/v1/servicos", map[string]any{
		"nome":           "Troca de Teclado",
		"subprocesso_id": subID,
		"demanda_rotina": "demanda",
		"sla":            "24",
	})

	editResp := do(t, env.server, "PUT", "/v1/servicos/"+svID,
		jsonBody(t, map[string]any{"sla": "48"}), env.adminToken)
	require.Equal(t, http.StatusOK, editResp.StatusCode)
	var editado struct {
		Versao int    `json:"versao"`
		SLA    string `json:"sla"`
	}
	decodeJSON(t, editResp, &editado)
	assert.Equal(t, 2, editado.Versao)
	assert.Equal(t, "48", editado.SLA)

	histResp := do(t, env.server, "GET", "/v1/servicos/"+svID+"/historico", nil, env.adminToken)
	require.Equal(t, http.StatusOK, histResp.StatusCode)
	var historico []struct {
		Versao int    `json:"versao"`
		SLA    string `json:"sla"`
	}
	decodeJSON(t, histResp, &historico)
	require.Len(t, historico, 1)
	assert.Equal(t, 1, historico[0].Versao)
	assert.Equal(t, "24", historico[0].SLA)
}

// The public listing applies the cascading filters server-side.
func TestE2E_FiltroCascataNoCatalogo(t *testing.T) {
	env := setupTestEnv(t)

	rhID := criarEntidade(t, env, "/v1/areas", map[string]any{"nome": "Recursos Humanos"})
	tiID := criarEntidade(t, env, "/v1/areas", map[string]any{"nome": "Tecnologia"})
	gestaoID := criarEntidade(t, env, "/v1/processos", map[string]any{"nome": "Gestão de Pessoas", "area_id": rhID})
	suporteID := criarEntidade(t, env, "/v1/processos", map[string]any{"nome": "Suporte", "area_id": tiID})
	onboardingID := criarEntidade(t, env, "/v1/subprocessos", map[string]any{"nome": "Onboarding", "processo_id": gestaoID})
	equipID := criarEntidade(t, env, "/v1/subprocessos", map[string]any{"nome": "Equipamentos", "processo_id": suporteID})
	criarEntidade(t, env, "/v1/servicos", map[string]any{"nome": "Solicitação de Notebook", "subprocesso_id": onboardingID, "demanda_rotina": "demanda"})
	criarEntidade(t, env, "/v1/servicos", map[string]any{"nome": "Troca de Teclado", "subprocesso_id": equipID, "demanda_rotina": "demanda"})

	// "Suporte" belongs to Tecnologia; selecting only Recursos Humanos drops
	// the orphaned processo selection and the RH service remains.
	listResp := do(t, env.server, "GET",
		"/v1/catalogo/servicos?areas=Recursos+Humanos&processos=Suporte", nil, "")
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var itens []struct {
		Nome string `json:"nome"`
		Area string `json:"area"`
	}
	decodeJSON(t, listResp, &itens)
	require.Len(t, itens, 1)
	assert.Equal(t, "Solicitação de Notebook", itens[0].Nome)
	assert.Equal(t, "Recursos Humanos", itens[0].Area)

	// product search is public and case-insensitive
	buscaResp := do(t, env.server, "GET", "/v1/catalogo/servicos?produto=teclado", nil, "")
	require.Equal(t, http.StatusOK, buscaResp.StatusCode)
	var busca []struct {
		Nome string `json:"nome"`
	}
	decodeJSON(t, buscaResp, &busca)
	require.Len(t, busca, 1)
	assert.Equal(t, "Troca de Teclado", busca[0].Nome)
}

// Closing the suggestion form blocks intake with 403.
func TestE2E_FechamentoDeSugestoes(t *testing.T) {
	env := setupTestEnv(t)

	fechaResp := do(t, env.server, "PUT", "/v1/configuracoes",
		jsonBody(t, map[string]any{"sugestoes_abertas": false}), env.adminToken)
	require.Equal(t, http.StatusOK, fechaResp.StatusCode)
	fechaResp.Body.Close()

	sugResp := do(t, env.server, "POST", "/v1/sugestoes",
		jsonBody(t, map[string]any{
			"tipo":    "novo",
			"payload": map[string]any{"escopo": "area", "modo": "criacao", "nome": "Marketing"},
		}), env.userToken)
	assert.Equal(t, http.StatusForbidden, sugResp.StatusCode)
	sugResp.Body.Close()
}

func criarEntidade(t *testing.T, env *testEnv, path string, body map[string]any) string {
	t.Helper()
	resp := do(t, env.server, "POST", path, jsonBody(t, body), env.adminToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "POST %s", path)
	var out struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &out)
	require.NotEmpty(t, out.ID)
	return out.ID
}
