package matching

// Taxonomy maps expectation categories to the keyword phrases that signal
// them. Categories keeps the declared order, which doubles as the tie-break
// order when ranked percentages are equal.
type Taxonomy struct {
	Categories []string
	Keywords   map[string][]string
}

// CompanyTaxonomy covers traits companies and professors look for in
// candidates. Phrases are matched case-insensitively as substrings.
var CompanyTaxonomy = Taxonomy{
	Categories: []string{
		"adaptabilidade",
		"pensamento_critico",
		"competencias_digitais",
		"trabalho_equipe",
		"comunicacao",
		"criatividade",
		"inteligencia_emocional",
		"diversidade",
		"aprendizado",
		"etica",
	},
	Keywords: map[string][]string{
		"adaptabilidade":         {"adaptabilidade", "adaptação", "flexibilidade", "mudança"},
		"pensamento_critico":     {"pensamento crítico", "crítico", "análise", "analítico"},
		"competencias_digitais":  {"digital", "tecnologia", "programação", "tech", "dados"},
		"trabalho_equipe":        {"equipe", "colaboração", "time", "colaborativo"},
		"comunicacao":            {"comunicação", "comunicar", "apresentação"},
		"criatividade":           {"criatividade", "criativo", "inovação", "inovador"},
		"inteligencia_emocional": {"emocional", "relacionamento", "interpessoal"},
		"diversidade":            {"diversidade", "inclusão", "cultural"},
		"aprendizado":            {"aprendizado", "desenvolvimento", "crescimento"},
		"etica":                  {"ética", "responsabilidade", "valores"},
	},
}

// StudentTaxonomy covers what students look for in an employer.
var StudentTaxonomy = Taxonomy{
	Categories: []string{
		"beneficios",
		"flexibilidade",
		"crescimento",
		"ambiente_inclusivo",
		"tecnologia",
		"proposito",
		"feedback",
		"cultura",
		"colaboracao",
		"estabilidade",
	},
	Keywords: map[string][]string{
		"beneficios":         {"benefícios", "saúde", "plano", "vale"},
		"flexibilidade":      {"flexível", "remoto", "horário", "home office"},
		"crescimento":        {"crescimento", "desenvolvimento", "carreira"},
		"ambiente_inclusivo": {"inclusivo", "diverso", "acolhedor"},
		"tecnologia":         {"tecnologia", "inovação", "moderno"},
		"proposito":          {"propósito", "social", "sustentabilidade"},
		"feedback":           {"feedback", "reconhecimento", "valorização"},
		"cultura":            {"cultura", "ambiente", "clima"},
		"colaboracao":        {"colaborativo", "equipe", "participativo"},
		"estabilidade":       {"estabilidade", "segurança", "permanência"},
	},
}
