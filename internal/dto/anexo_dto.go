package dto

import "github.com/google/uuid"

type AnexoResponse struct {
	ID          uuid.UUID  `json:"id"`
	NomeArquivo string     `json:"nome_arquivo"`
	URL         string     `json:"url"`
	MimeType    string     `json:"mime_type"`
	Tamanho     int64      `json:"tamanho"`
	ServicoID   *uuid.UUID `json:"servico_id,omitempty"`
	SugestaoID  *uuid.UUID `json:"sugestao_id,omitempty"`
	CreatedAt   string     `json:"created_at"`
}
