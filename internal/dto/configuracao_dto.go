package dto

type AtualizarConfiguracaoRequest struct {
	NomePortal         *string `json:"nome_portal"          validate:"omitempty,min=2,max=100"`
	EmailContato       *string `json:"email_contato"        validate:"omitempty,email"`
	MensagemBoasVindas *string `json:"mensagem_boas_vindas" validate:"omitempty,max=1000"`
	SugestoesAbertas   *bool   `json:"sugestoes_abertas"`
}

type ConfiguracaoResponse struct {
	NomePortal         string  `json:"nome_portal"`
	EmailContato       *string `json:"email_contato,omitempty"`
	MensagemBoasVindas *string `json:"mensagem_boas_vindas,omitempty"`
	SugestoesAbertas   bool    `json:"sugestoes_abertas"`
}
