package services

import (
	"fmt"
	"strings"

	resp "mentoria/internal/models/response_models"
)

// RenderReport turns a report body into display markdown. Total over the
// variant: structured bodies get the fixed section order (summary, formats,
// recommendation, next steps) with empty sections omitted; raw bodies come
// back verbatim. It never fails, whatever the input looks like.
func RenderReport(body resp.ReportBody) string {
	if body.Kind != resp.ReportKindStructured || body.Structured == nil {
		return body.Raw
	}

	data := body.Structured
	var b strings.Builder

	if len(data.Summary) > 0 {
		b.WriteString("## Resumo do Perfil\n\n")
		for _, item := range data.Summary {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}

	if len(data.Formats) > 0 {
		b.WriteString("## Formatos Recomendados\n\n")
		for _, format := range data.Formats {
			renderFormat(&b, format)
		}
	}

	if data.Recomendacao != "" {
		b.WriteString("## Recomendação Estratégica\n\n")
		b.WriteString(data.Recomendacao)
		b.WriteString("\n\n")
	}

	if len(data.ProximosPassos) > 0 {
		b.WriteString("## Próximos Passos\n\n")
		for i, step := range data.ProximosPassos {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderFormat(b *strings.Builder, format resp.MentoriaFormat) {
	if format.Title != "" {
		fmt.Fprintf(b, "### %s\n\n", format.Title)
	}

	structure := [][2]string{
		{"Público", format.Estrutura.Publico},
		{"Promessa", format.Estrutura.Promessa},
		{"Entrega", format.Estrutura.Entrega},
		{"Duração", format.Estrutura.Duracao},
		{"Frequência", format.Estrutura.Frequencia},
		{"Entregáveis", format.Estrutura.Entregaveis},
		{"Vagas", format.Estrutura.Vagas},
	}
	for _, pair := range structure {
		if pair[1] != "" {
			fmt.Fprintf(b, "- **%s:** %s\n", pair[0], pair[1])
		}
	}
	b.WriteString("\n")

	if format.PorQueFazSentido != "" {
		fmt.Fprintf(b, "**Por que faz sentido:** %s\n\n", format.PorQueFazSentido)
	}

	monetization := [][2]string{
		{"Ticket sugerido", format.PotencialLucrativo.TicketSugerido},
		{"Cenário conservador", format.PotencialLucrativo.CenarioConservador},
		{"Cenário otimista", format.PotencialLucrativo.CenarioOtimista},
	}
	hasMonetization := false
	for _, pair := range monetization {
		if pair[1] != "" {
			hasMonetization = true
			break
		}
	}
	if hasMonetization {
		b.WriteString("**Potencial lucrativo:**\n")
		for _, pair := range monetization {
			if pair[1] != "" {
				fmt.Fprintf(b, "- %s: %s\n", pair[0], pair[1])
			}
		}
		b.WriteString("\n")
	}

	if format.CaminhoParaEscala != "" {
		fmt.Fprintf(b, "**Caminho para escala:** %s\n\n", format.CaminhoParaEscala)
	}
}
