package models

import "time"

// LinkType identifies which authoritative URL of an entity is wanted.
type LinkType string

const (
	LinkOfficialSite LinkType = "site_oficial"
	LinkCouncilSite  LinkType = "site_camara"
	LinkTransparency LinkType = "portal_transparencia"
)

// Check is one of the content verifications a criterion may require.
type Check string

const (
	CheckAvailability     Check = "disponibilidade"
	CheckRecency          Check = "atualidade"
	CheckHistoricalSeries Check = "serie_historica"
	CheckReportDownload   Check = "gravacao_relatorios"
	CheckSearchFilter     Check = "filtro_pesquisa"
)

// Classification is the severity tier of a criterion.
type Classification string

const (
	ClassEssential   Classification = "Essencial"
	ClassMandatory   Classification = "Obrigatória"
	ClassRecommended Classification = "Recomendada"
)

// Criterion is a single question from the transparency matrix.
type Criterion struct {
	ID             string         `json:"id" yaml:"id"`
	Question       string         `json:"pergunta" yaml:"pergunta"`
	Dimension      string         `json:"dimensao" yaml:"dimensao"`
	LegalBasis     string         `json:"fundamentacao" yaml:"fundamentacao"`
	Classification Classification `json:"classificacao" yaml:"classificacao"`
}

// Result is the outcome of evaluating one criterion for one entity.
// Records are immutable once emitted; the JSON shape is the contract
// with the frontend and the report writers.
type Result struct {
	ID             string          `json:"id"`
	Question       string          `json:"pergunta"`
	Dimension      string          `json:"dimensao,omitempty"`
	Classification Classification  `json:"classificacao"`
	LegalBasis     string          `json:"fundamentacao,omitempty"`
	Satisfied      bool            `json:"atende"`
	Checks         map[Check]bool  `json:"verificacoes"`
	EvidenceURL    string          `json:"linkEvidencia,omitempty"`
	Note           string          `json:"observacao,omitempty"`
}

// Link is a stored entity→URL mapping (resolver tier and audit trail).
type Link struct {
	ID          int64      `json:"id"`
	EntityName  string     `json:"orgao"`
	Type        LinkType   `json:"tipo"`
	URL         string     `json:"url"`
	Active      bool       `json:"ativo"`
	LastChecked *time.Time `json:"ultima_verificacao,omitempty"`
}

// Evaluation summarizes one finished run.
type Evaluation struct {
	RunID       string    `json:"run_id"`
	EntityName  string    `json:"orgao"`
	EntityType  string    `json:"tipo_orgao,omitempty"`
	SiteURL     string    `json:"site_oficial,omitempty"`
	PortalURL   string    `json:"portal_transparencia,omitempty"`
	Satisfied   int       `json:"atendidos"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"concluida_em"`
}
