package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/models"
)

func strPtr(s string) *string { return &s }

// Seed inserts the demo users and challenges on first boot. It is a no-op
// when the users table already has rows, and seeding failures are logged
// rather than propagated so they never block startup.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("Failed to check existing users before seeding")
		return
	}
	if count > 0 {
		return
	}

	users, err := sampleUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build sample users")
		return
	}
	if err := db.Create(&users).Error; err != nil {
		log.Error().Err(err).Msg("Failed to seed sample users")
		return
	}
	log.Info().Int("count", len(users)).Msg("Inserted sample users including admin")

	challenges := sampleChallenges(users)
	if err := db.Create(&challenges).Error; err != nil {
		log.Error().Err(err).Msg("Failed to seed sample challenges")
		return
	}
	log.Info().Int("count", len(challenges)).Msg("Inserted sample challenges")
}

func sampleUsers() ([]models.User, error) {
	hash := func(password string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash seed password: %w", err)
		}
		return string(h), nil
	}

	adminHash, err := hash("ADMIN")
	if err != nil {
		return nil, err
	}
	userHash, err := hash("123456")
	if err != nil {
		return nil, err
	}

	return []models.User{
		{
			Name:         "Administrador do Sistema",
			Email:        "admin@pucrs.br",
			PasswordHash: adminHash,
			Type:         models.UserTypeAdmin,
			Points:       1000,
		},
		{
			Name:         "João Silva",
			Email:        "joao.silva@pucrs.br",
			PasswordHash: userHash,
			Type:         models.UserTypeProfessor,
			Points:       50,
			Expectations: strPtr("Busco alunos com pensamento crítico, adaptabilidade, competências digitais e habilidades de comunicação eficaz. Valorizo muito a criatividade e capacidade de trabalho em equipe."),
		},
		{
			Name:         "Maria Oliveira",
			Email:        "maria.oliveira@pucrs.br",
			PasswordHash: userHash,
			Type:         models.UserTypeStudent,
			Points:       85,
			Expectations: strPtr("Procuro uma empresa com ambiente inclusivo, oportunidades de crescimento profissional, tecnologia moderna, horário flexível e que valorize propósito e responsabilidade social."),
		},
		{
			Name:         "Pedro Santos",
			Email:        "pedro.santos@techcorp.com.br",
			PasswordHash: userHash,
			Type:         models.UserTypeCompany,
			Points:       30,
			Expectations: strPtr("Nossa empresa busca recém-formados com competências digitais, inteligência emocional, capacidade de inovação e forte ética profissional. Valorizamos diversidade e aprendizado contínuo."),
		},
		{
			Name:         "Ana Costa",
			Email:        "ana.costa@pucrs.br",
			PasswordHash: userHash,
			Type:         models.UserTypeStudent,
			Points:       120,
			Expectations: strPtr("Busco empresas que ofereçam planos de saúde, cultura colaborativa, feedback regular, possibilidade de trabalho remoto e oportunidades de desenvolvimento pessoal e profissional."),
		},
		{
			Name:         "Carlos Fernandes",
			Email:        "carlos.fernandes@pucrs.br",
			PasswordHash: userHash,
			Type:         models.UserTypeProfessor,
			Points:       75,
			Expectations: strPtr("Procuro estudantes com pensamento crítico, habilidades de resolução de problemas, consciência cultural, capacidade de comunicação e comprometimento com ética e responsabilidade."),
		},
		{
			Name:         "Augusto Ribeiro",
			Email:        "augusto.ribeiro@inovacorp.com.br",
			PasswordHash: userHash,
			Type:         models.UserTypeCompany,
			Points:       95,
			Expectations: strPtr("Buscamos talentos com adaptabilidade, trabalho em equipe, criatividade, competências tecnológicas e forte capacidade de comunicação. Valorizamos diversidade e inovação."),
		},
	}, nil
}

func sampleChallenges(users []models.User) []models.Challenge {
	return []models.Challenge{
		{
			Title:       "Sistema de Gestão Sustentável",
			Description: "Desenvolver uma plataforma para otimizar o consumo de energia em edifícios corporativos, utilizando sensores IoT e algoritmos de machine learning para reduzir custos e impacto ambiental. A solução deve incluir dashboard em tempo real, alertas automáticos e relatórios de economia gerada.",
			Summary:     "Plataforma IoT + ML para otimização de energia em edifícios corporativos com dashboard em tempo real.",
			CreatorID:   users[1].ID,
			CreatorName: users[1].Name,
			Deadline:    strPtr("2025-06-15"),
			Reward:      strPtr("R$ 10.000 + Estágio na empresa"),
			Active:      true,
		},
		{
			Title:       "App de Mobilidade Urbana Inteligente",
			Description: "Criar um aplicativo que integre dados de transporte público, trânsito e rotas de bicicleta para otimizar deslocamentos urbanos, incluindo funcionalidades de gamificação para incentivar mobilidade sustentável. O app deve ter GPS, integração com APIs de transporte e sistema de pontuação para usuários ecológicos.",
			Summary:     "App integrado de transporte público, trânsito e rotas sustentáveis com gamificação.",
			CreatorID:   users[6].ID,
			CreatorName: users[6].Name,
			Deadline:    strPtr("2025-07-20"),
			Reward:      strPtr("R$ 15.000 + Mentoria técnica"),
			Active:      true,
		},
		{
			Title:       "Plataforma de Educação Adaptativa com IA",
			Description: "Desenvolver uma solução educacional que utiliza inteligência artificial para personalizar o aprendizado de estudantes, adaptando conteúdo e metodologia conforme o perfil e progresso individual. A plataforma deve incluir análise de comportamento, recomendações automáticas e relatórios para professores.",
			Summary:     "Plataforma educacional com IA para personalizar aprendizado e adaptar conteúdo automaticamente.",
			CreatorID:   users[5].ID,
			CreatorName: users[5].Name,
			Deadline:    strPtr("2025-08-10"),
			Reward:      strPtr("R$ 8.000 + Publicação em revista científica"),
			Active:      true,
		},
	}
}
