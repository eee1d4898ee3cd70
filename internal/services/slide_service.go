package services

import (
	resp "mentoria/internal/models/response_models"
)

// slides is the full funnel, in order. The first choice slide cannot be
// retreated from, and the last question before the personal-data step does
// not auto-advance so the user can review before handing over contact data.
var slides = []resp.SlideConfig{
	{
		ID:        1,
		Type:      resp.SlideTypeChoice,
		Title:     "Diagnóstico de Mentoria",
		Question:  "Como você atua hoje?",
		AnswerKey: "atuacao",
		NoRetreat: true,
		Options: []resp.SlideOption{
			{Value: "mentor", Label: "Já ofereço mentoria ou acompanhamento", Icon: "award"},
			{Value: "consultor", Label: "Atuo com consultoria ou serviços", Icon: "briefcase"},
			{Value: "especialista", Label: "Sou especialista, mas ainda não mentoro", Icon: "lightbulb"},
		},
	},
	{
		ID:         2,
		Type:       resp.SlideTypeIntro,
		Title:      "Descubra seu modelo ideal de mentoria",
		Subtitle:   "Em poucos minutos você recebe uma análise personalizada do seu potencial como mentor, com formatos recomendados e um caminho de escala.",
		ButtonText: "Começar diagnóstico",
	},
	{
		ID:        3,
		Type:      resp.SlideTypeQuestion,
		Question:  "Qual perfil descreve melhor sua atuação?",
		AnswerKey: "perfil_atuacao",
		Options: []resp.SlideOption{
			{Value: "executor", Label: "Executo projetos para os clientes"},
			{Value: "estrategista", Label: "Desenho estratégias e acompanho a execução"},
			{Value: "professor", Label: "Ensino e treino times ou pessoas"},
		},
	},
	{
		ID:        4,
		Type:      resp.SlideTypeQuestion,
		Question:  "Há quanto tempo você atua no seu mercado?",
		AnswerKey: "tempo_mercado",
		Options: []resp.SlideOption{
			{Value: "ate_2_anos", Label: "Até 2 anos"},
			{Value: "2_5_anos", Label: "De 2 a 5 anos"},
			{Value: "5_10_anos", Label: "De 5 a 10 anos"},
			{Value: "10_mais", Label: "Mais de 10 anos"},
		},
	},
	{
		ID:        5,
		Type:      resp.SlideTypeQuestion,
		Question:  "Qual seu faturamento mensal médio hoje?",
		AnswerKey: "faturamento_mensal",
		Options: []resp.SlideOption{
			{Value: "ate_10k", Label: "Até R$ 10 mil"},
			{Value: "10k-30k", Label: "Entre R$ 10 mil e R$ 30 mil"},
			{Value: "30k-100k", Label: "Entre R$ 30 mil e R$ 100 mil"},
			{Value: "100k+", Label: "Acima de R$ 100 mil"},
		},
	},
	{
		ID:        6,
		Type:      resp.SlideTypeQuestion,
		Question:  "Como chega a maior parte da sua demanda?",
		AnswerKey: "tipo_demanda",
		Options: []resp.SlideOption{
			{Value: "indicacao", Label: "Indicação e boca a boca"},
			{Value: "conteudo", Label: "Conteúdo e audiência própria"},
			{Value: "trafego", Label: "Tráfego pago e funis"},
			{Value: "parcerias", Label: "Parcerias e networking"},
		},
	},
	{
		ID:        7,
		Type:      resp.SlideTypeQuestion,
		Question:  "Que tipo de problema você resolve para seus clientes?",
		AnswerKey: "natureza_problema",
		Options: []resp.SlideOption{
			{Value: "tecnico", Label: "Problemas técnicos e operacionais"},
			{Value: "estrategico", Label: "Direção estratégica e decisões"},
			{Value: "comportamental", Label: "Comportamento, hábitos e performance"},
		},
	},
	{
		ID:        8,
		Type:      resp.SlideTypeQuestion,
		Question:  "Quantos clientes ou projetos você consegue atender em paralelo?",
		AnswerKey: "capacidade_projetos",
		Options: []resp.SlideOption{
			{Value: "ate_3", Label: "Até 3"},
			{Value: "4_10", Label: "De 4 a 10"},
			{Value: "10_mais", Label: "Mais de 10"},
		},
	},
	{
		ID:        9,
		Type:      resp.SlideTypeQuestion,
		Question:  "Quantas horas por semana você pode dedicar a uma mentoria?",
		AnswerKey: "horas_semanais",
		Options: []resp.SlideOption{
			{Value: "ate_10", Label: "Até 10 horas"},
			{Value: "10-20", Label: "De 10 a 20 horas"},
			{Value: "20+", Label: "Mais de 20 horas"},
		},
	},
	{
		ID:        10,
		Type:      resp.SlideTypeQuestion,
		Question:  "Como está sua metodologia hoje?",
		AnswerKey: "estado_metodologia",
		Options: []resp.SlideOption{
			{Value: "na_cabeca", Label: "Está na minha cabeça, nada documentado"},
			{Value: "parcial", Label: "Parcialmente documentada"},
			{Value: "estruturada", Label: "Documentada e estruturada"},
		},
	},
	{
		ID:        11,
		Type:      resp.SlideTypeQuestion,
		Question:  "Qual a capacidade de investimento do público que você quer atender?",
		AnswerKey: "capacidade_investimento_publico",
		Options: []resp.SlideOption{
			{Value: "ate_1k", Label: "Até R$ 1 mil"},
			{Value: "1k_5k", Label: "De R$ 1 mil a R$ 5 mil"},
			{Value: "5k_20k", Label: "De R$ 5 mil a R$ 20 mil"},
			{Value: "20k_mais", Label: "Acima de R$ 20 mil"},
		},
	},
	{
		ID:        12,
		Type:      resp.SlideTypeQuestion,
		Question:  "Qual seu principal objetivo para os próximos 90 dias?",
		AnswerKey: "objetivo_90_dias",
		Options: []resp.SlideOption{
			{Value: "validar", Label: "Validar um formato de mentoria"},
			{Value: "aumentar_ticket", Label: "Aumentar meu ticket médio"},
			{Value: "escalar", Label: "Escalar sem aumentar horas"},
			{Value: "previsibilidade", Label: "Ter previsibilidade de receita"},
		},
	},
	{
		ID:            13,
		Type:          resp.SlideTypeQuestion,
		Question:      "Como você quer ser posicionado no seu mercado?",
		AnswerKey:     "posicionamento_desejado",
		NoAutoAdvance: true,
		Options: []resp.SlideOption{
			{Value: "referencia_nicho", Label: "Referência em um nicho específico"},
			{Value: "autoridade_ampla", Label: "Autoridade ampla no meu mercado"},
			{Value: "bastidores", Label: "Forte nos bastidores, sem exposição"},
		},
	},
	{
		ID:           14,
		Type:         resp.SlideTypePersonalData,
		Title:        "Quase lá!",
		Subtitle:     "Preencha seus dados para receber o diagnóstico completo.",
		ButtonText:   "Ver meu diagnóstico",
		RequiredKeys: []string{"nome", "email", "whatsapp", "instagram"},
	},
	{
		ID:       15,
		Type:     resp.SlideTypeLoading,
		Title:    "Gerando seu diagnóstico...",
		Subtitle: "Estamos analisando suas respostas. Isso leva alguns segundos.",
	},
}

type SlideServiceInterface interface {
	Catalog() []resp.SlideConfig
	SlideById(id int) *resp.SlideConfig
	TotalQuestions() int
	QuestionNumber(currentSlide int) int
	IsComplete(slide *resp.SlideConfig, answers map[string]string) bool
	KnownKey(key string) bool
	LastAnswerableSlideId() int
	LoadingSlideId() int
}

type SlideService struct {
	knownKeys map[string]bool
}

func NewSlideService() SlideServiceInterface {
	keys := map[string]bool{}
	for _, slide := range slides {
		if slide.AnswerKey != "" {
			keys[slide.AnswerKey] = true
		}
		for _, k := range slide.RequiredKeys {
			keys[k] = true
		}
	}
	return &SlideService{knownKeys: keys}
}

func (s *SlideService) Catalog() []resp.SlideConfig {
	return slides
}

func (s *SlideService) SlideById(id int) *resp.SlideConfig {
	for i := range slides {
		if slides[i].ID == id {
			return &slides[i]
		}
	}
	return nil
}

// TotalQuestions counts the question slides plus the initial choice slide,
// which the progress bar treats as question one.
func (s *SlideService) TotalQuestions() int {
	count := 1
	for _, slide := range slides {
		if slide.Type == resp.SlideTypeQuestion {
			count++
		}
	}
	return count
}

// QuestionNumber clamps the indicator so it never exceeds the number of
// answerable steps.
func (s *SlideService) QuestionNumber(currentSlide int) int {
	if currentSlide <= 1 {
		return 1
	}
	total := s.TotalQuestions()
	if n := currentSlide - 1; n < total {
		return n
	}
	return total
}

func (s *SlideService) IsComplete(slide *resp.SlideConfig, answers map[string]string) bool {
	if slide == nil {
		return false
	}
	switch slide.Type {
	case resp.SlideTypeIntro:
		return true
	case resp.SlideTypeChoice, resp.SlideTypeQuestion:
		return answers[slide.AnswerKey] != ""
	case resp.SlideTypePersonalData:
		for _, key := range slide.RequiredKeys {
			if answers[key] == "" {
				return false
			}
		}
		return true
	default:
		// Loading is terminal; there is nothing to complete.
		return false
	}
}

func (s *SlideService) KnownKey(key string) bool {
	return s.knownKeys[key]
}

func (s *SlideService) LastAnswerableSlideId() int {
	last := 1
	for _, slide := range slides {
		if slide.Type != resp.SlideTypeLoading && slide.ID > last {
			last = slide.ID
		}
	}
	return last
}

func (s *SlideService) LoadingSlideId() int {
	for _, slide := range slides {
		if slide.Type == resp.SlideTypeLoading {
			return slide.ID
		}
	}
	return len(slides)
}
