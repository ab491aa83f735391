// Package seed carries the GranCoffee demo dataset the service starts from.
package seed

import (
	"time"

	"github.com/grancoffee/helpdesk-service/internal/domain"
)

// Users returns the static user directory.
func Users() []domain.UserDetail {
	return []domain.UserDetail{
		{
			ID:         "1",
			Name:       "João Silva",
			Tag:        "JOAO.SILVA",
			Email:      "joao.silva@grancoffee.com",
			Department: "Tecnologia da Informação",
			Superior:   "Carlos Souza",
		},
		{
			ID:         "2",
			Name:       "Lucas Matias Ferreira",
			Tag:        "LUCAS.FERREIRA",
			Email:      "lucas.ferreira@grancoffee.com",
			Department: "Suporte Técnico",
			Superior:   "Ana Costa",
		},
		{
			ID:         "3",
			Name:       "Maria Oliveira",
			Tag:        "MARIA.OLIVEIRA",
			Email:      "maria.oliveira@grancoffee.com",
			Department: "Recursos Humanos",
			Superior:   "Pedro Santos",
		},
		{
			ID:         "4",
			Name:       "Carlos Souza",
			Tag:        "CARLOS.SOUZA",
			Email:      "carlos.souza@grancoffee.com",
			Department: "Gerência de TI",
			Superior:   "Ana Costa",
		},
		{
			ID:         "5",
			Name:       "Ana Costa",
			Tag:        "ANA.COSTA",
			Email:      "ana.costa@grancoffee.com",
			Department: "Diretoria Técnica",
			Superior:   "N/A",
		},
		{
			ID:         "6",
			Name:       "Pedro Santos",
			Tag:        "PEDRO.SANTOS",
			Email:      "pedro.santos@grancoffee.com",
			Department: "Operações",
			Superior:   "Ana Costa",
		},
	}
}

// Incidents returns the starting incident set. Projects start empty.
func Incidents() []domain.CaseRecord {
	return []domain.CaseRecord{
		{
			ID:                 "1",
			Number:             "INC001234",
			RequestedFor:       "João Silva",
			Status:             domain.StatusEmAndamento,
			Priority:           domain.PriorityAlta,
			AssignedGroup:      "Suporte Técnico",
			AssignedTo:         "Lucas Matias Ferreira",
			Description:        "Computador não está ligando após atualização do sistema. Tentei reiniciar várias vezes mas não funciona.",
			WorkNotes:          "Verificando fonte de alimentação e componentes internos.",
			AdditionalComments: "Agendado para verificação presencial.",
			TimerMinutes:       45,
			LastUpdated:        time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			OpenedBy:           "João Silva",
			Type:               "Hardware",
			Impact:             "Alto",
			CreatedAt:          time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Number:        "INC001235",
			RequestedFor:  "João Silva",
			Status:        domain.StatusPendente,
			Priority:      domain.PriorityMedia,
			AssignedGroup: "Suporte Técnico",
			AssignedTo:    domain.Unassigned,
			Description:   "Impressora da sala não está funcionando. Fica mostrando erro de papel mesmo com papel.",
			LastUpdated:   time.Date(2024, 1, 15, 14, 20, 0, 0, time.UTC),
			OpenedBy:      "João Silva",
			Type:          "Impressora",
			Impact:        "Médio",
			CreatedAt:     time.Date(2024, 1, 15, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:                 "3",
			Number:             "INC001236",
			RequestedFor:       "Maria Oliveira",
			Status:             domain.StatusResolvido,
			Priority:           domain.PriorityBaixa,
			AssignedGroup:      "Suporte Técnico",
			AssignedTo:         "Lucas Matias Ferreira",
			Description:        "Não consigo acessar a pasta compartilhada do servidor.",
			WorkNotes:          "Resetado permissões de acesso.",
			AdditionalComments: "Problema resolvido. Acesso liberado.",
			Conclusion:         "Permissões de rede reconfiguradas com sucesso.",
			TimerMinutes:       25,
			LastUpdated:        time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
			OpenedBy:           "Maria Oliveira",
			Type:               "Acesso",
			Impact:             "Baixo",
			CreatedAt:          time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:            "4",
			Number:        "INC001237",
			RequestedFor:  "Carlos Souza",
			Status:        domain.StatusPendente,
			Priority:      domain.PriorityCritica,
			AssignedGroup: "Suporte Técnico",
			AssignedTo:    domain.Unassigned,
			Description:   "Sistema de vendas está completamente fora do ar. Não conseguimos processar nenhuma venda.",
			LastUpdated:   time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
			OpenedBy:      "Carlos Souza",
			Type:          "Software",
			Impact:        "Crítico",
			CreatedAt:     time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:                 "5",
			Number:             "INC001238",
			RequestedFor:       "Ana Costa",
			Status:             domain.StatusAguardandoSolicitante,
			Priority:           domain.PriorityMedia,
			AssignedGroup:      "Suporte Técnico",
			AssignedTo:         "Lucas Matias Ferreira",
			Description:        "Email não está enviando mensagens. Recebo erro de conexão.",
			WorkNotes:          "Solicitado teste de conexão com servidor SMTP.",
			AdditionalComments: "Aguardando retorno do usuário com detalhes do erro.",
			TimerMinutes:       15,
			LastUpdated:        time.Date(2024, 1, 15, 11, 20, 0, 0, time.UTC),
			OpenedBy:           "Ana Costa",
			Type:               "Software",
			Impact:             "Médio",
			CreatedAt:          time.Date(2024, 1, 15, 10, 45, 0, 0, time.UTC),
		},
		{
			ID:            "6",
			Number:        "INC001239",
			RequestedFor:  "Pedro Santos",
			Status:        domain.StatusPendente,
			Priority:      domain.PriorityBaixa,
			AssignedGroup: "Suporte Técnico",
			AssignedTo:    domain.Unassigned,
			Description:   "Computador está muito lento para abrir programas.",
			LastUpdated:   time.Date(2024, 1, 15, 13, 15, 0, 0, time.UTC),
			OpenedBy:      "Pedro Santos",
			Type:          "Hardware",
			Impact:        "Baixo",
			CreatedAt:     time.Date(2024, 1, 15, 13, 15, 0, 0, time.UTC),
		},
	}
}

// KnowledgeArticles returns the static knowledge base.
func KnowledgeArticles() []domain.KnowledgeArticle {
	return []domain.KnowledgeArticle{
		{
			ID:       "1",
			Title:    "Como resolver problemas de computador que não liga",
			Content:  "Passos para diagnosticar e resolver problemas de computador que não liga:\n\n1. Verifique se o cabo de energia está conectado corretamente\n2. Teste a tomada com outro equipamento\n3. Verifique se o botão de energia está funcionando\n4. Remova e reinstale a bateria (notebooks)\n5. Teste com outro cabo de energia\n6. Se o problema persistir, entre em contato com o suporte técnico.",
			Keywords: []string{"computador não liga", "pc não liga", "notebook não liga", "não inicializa", "não liga"},
			Category: "Hardware",
		},
		{
			ID:       "2",
			Title:    "Soluções para problemas de conexão de rede",
			Content:  "Passos para resolver problemas de conexão de rede:\n\n1. Verifique se o cabo de rede está conectado\n2. Reinicie o roteador e o modem\n3. Execute o diagnóstico de rede do Windows\n4. Verifique as configurações de IP\n5. Atualize os drivers de rede\n6. Entre em contato com o suporte se o problema persistir.",
			Keywords: []string{"sem rede", "sem internet", "conexão", "rede", "wifi", "cabo de rede"},
			Category: "Rede",
		},
		{
			ID:       "3",
			Title:    "Como limpar cache e cookies do navegador",
			Content:  "Passos para limpar cache e cookies:\n\n1. Abra o navegador\n2. Pressione Ctrl+Shift+Delete\n3. Selecione o período de tempo\n4. Marque \"Cookies\" e \"Cache\"\n5. Clique em \"Limpar dados\"\n6. Reinicie o navegador",
			Keywords: []string{"limpar cache", "cookies", "navegador lento", "cache", "limpar dados"},
			Category: "Software",
		},
		{
			ID:       "4",
			Title:    "Resolver problemas de impressora",
			Content:  "Soluções para problemas comuns de impressora:\n\n1. Verifique se há papel e tinta/toner\n2. Verifique se a impressora está ligada\n3. Reinicie a impressora\n4. Verifique a conexão USB ou rede\n5. Atualize os drivers da impressora\n6. Execute o diagnóstico de impressora do Windows",
			Keywords: []string{"impressora não funciona", "impressora", "não imprime", "erro de papel", "driver impressora"},
			Category: "Impressora",
		},
		{
			ID:       "5",
			Title:    "Como resolver software travando",
			Content:  "Passos para resolver problemas de software travando:\n\n1. Force o fechamento do programa (Ctrl+Alt+Delete)\n2. Reinicie o computador\n3. Verifique se há atualizações disponíveis\n4. Execute o programa como administrador\n5. Desinstale e reinstale o programa\n6. Verifique se há conflitos com outros programas",
			Keywords: []string{"software travando", "programa trava", "aplicativo não responde", "erro no software"},
			Category: "Software",
		},
		{
			ID:       "6",
			Title:    "Resolver problemas de acesso negado",
			Content:  "Soluções para problemas de acesso negado:\n\n1. Verifique suas credenciais de login\n2. Execute o programa como administrador\n3. Verifique as permissões de arquivo/pasta\n4. Reinicie o computador\n5. Entre em contato com o administrador do sistema\n6. Verifique se sua conta não foi bloqueada",
			Keywords: []string{"acesso negado", "permissão", "não consegue acessar", "login", "senha"},
			Category: "Acesso",
		},
		{
			ID:       "7",
			Title:    "Como resolver lentidão no sistema",
			Content:  "Passos para resolver lentidão no sistema:\n\n1. Reinicie o computador\n2. Verifique o uso da CPU e memória\n3. Desative programas desnecessários na inicialização\n4. Execute limpeza de disco\n5. Verifique por vírus e malware\n6. Atualize drivers e sistema operacional",
			Keywords: []string{"lentidão no sistema", "computador lento", "sistema lento", "performance"},
			Category: "Performance",
		},
		{
			ID:       "8",
			Title:    "Resolver problemas de email",
			Content:  "Soluções para problemas de email:\n\n1. Verifique sua conexão com a internet\n2. Confirme as configurações do servidor\n3. Verifique se a senha está correta\n4. Teste com outro cliente de email\n5. Verifique se o servidor não está em manutenção\n6. Entre em contato com o suporte de TI",
			Keywords: []string{"email não envia", "email", "não recebe email", "servidor smtp", "correio eletrônico"},
			Category: "Email",
		},
	}
}
