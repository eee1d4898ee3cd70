package response_models

// Structured shape the model is asked to return. JSON keys mirror the wire
// format the funnel's frontend consumes.
type ResultData struct {
	Summary        []string         `json:"summary"`
	Formats        []MentoriaFormat `json:"formats"`
	Recomendacao   string           `json:"recomendacao"`
	ProximosPassos []string         `json:"proximosPassos"`
}

type MentoriaFormat struct {
	Title              string             `json:"title"`
	Estrutura          FormatoEstrutura   `json:"estrutura"`
	PorQueFazSentido   string             `json:"porQueFazSentido"`
	PotencialLucrativo PotencialLucrativo `json:"potencialLucrativo"`
	CaminhoParaEscala  string             `json:"caminhoParaEscala"`
}

type FormatoEstrutura struct {
	Publico     string `json:"publico"`
	Promessa    string `json:"promessa"`
	Entrega     string `json:"entrega"`
	Duracao     string `json:"duracao"`
	Frequencia  string `json:"frequencia"`
	Entregaveis string `json:"entregaveis"`
	Vagas       string `json:"vagas"`
}

type PotencialLucrativo struct {
	TicketSugerido     string `json:"ticketSugerido"`
	CenarioConservador string `json:"cenarioConservador"`
	CenarioOtimista    string `json:"cenarioOtimista"`
}

const (
	ReportKindStructured = "structured"
	ReportKindRaw        = "raw"
)

// ReportBody is the tagged form of a stored report: either the parsed
// structured data or the provider's text kept verbatim. Exactly one of
// Structured/Raw is meaningful, selected by Kind.
type ReportBody struct {
	Kind       string      `json:"kind"`
	Structured *ResultData `json:"structured,omitempty"`
	Raw        string      `json:"raw,omitempty"`
}

func StructuredReport(data *ResultData) ReportBody {
	return ReportBody{Kind: ReportKindStructured, Structured: data}
}

func RawReport(text string) ReportBody {
	return ReportBody{Kind: ReportKindRaw, Raw: text}
}

type ResultResponse struct {
	SubmissionID string     `json:"submission_id"`
	ResultID     string     `json:"result_id"`
	ModelUsed    string     `json:"model_used,omitempty"`
	Body         ReportBody `json:"body"`
	Rendered     string     `json:"rendered"`
}
