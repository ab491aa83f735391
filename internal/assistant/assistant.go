// Package assistant implements the help-desk chat responder. Despite the
// product name it is keyword matching over the knowledge base plus canned
// replies; keep it deterministic and rule-based.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/grancoffee/helpdesk-service/internal/service"
)

// Responder answers a single user message.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// ScriptedResponder matches the message against the knowledge base and falls
// back to fixed replies keyed on message substrings.
type ScriptedResponder struct {
	knowledge *service.KnowledgeService
}

// NewScriptedResponder constructs the responder.
func NewScriptedResponder(knowledge *service.KnowledgeService) *ScriptedResponder {
	return &ScriptedResponder{knowledge: knowledge}
}

const (
	helpReply = "Estou aqui para ajudar! Posso auxiliar com problemas técnicos, orientações sobre procedimentos e buscar informações na base de conhecimento. Descreva seu problema ou dúvida."

	openTicketReply = "Para abrir um chamado, você precisa:\n\n1. Descrever detalhadamente o problema\n2. Selecionar o tipo de problema\n3. Indicar o nível de impacto\n4. Aguardar a atribuição para um técnico\n\nPosso ajudar você a formular uma descrição mais clara do problema. Conte-me mais detalhes!"

	problemReply = "Entendo que você está enfrentando um problema. Para que eu possa ajudar melhor, preciso de mais informações:\n\n• Qual sistema ou equipamento está apresentando problema?\n• Quando o problema começou?\n• Quais mensagens de erro você está vendo?\n• Já tentou alguma solução?\n\nCom essas informações, posso sugerir uma solução ou ajudar a abrir um chamado adequado."

	fallbackReply = "Desculpe, não encontrei informações específicas sobre sua consulta. Posso ajudar com:\n\n• Problemas de computador e software\n• Questões de rede e conectividade\n• Problemas de impressoras\n• Orientações para abertura de chamados\n\nTente ser mais específico sobre o problema que está enfrentando."
)

// Reply answers the latest user message. A knowledge hit returns the first
// matching article verbatim; otherwise canned replies apply in order.
func (r *ScriptedResponder) Reply(ctx context.Context, message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed != "" {
		articles, err := r.knowledge.Search(ctx, trimmed, "")
		if err != nil {
			return "", err
		}
		if len(articles) > 0 {
			article := articles[0]
			return fmt.Sprintf("Encontrei informações sobre %q:\n\n%s\n\nEssa informação foi útil? Posso ajudar com algo mais?", article.Title, article.Content), nil
		}
	}

	lowered := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lowered, "ajuda") || strings.Contains(lowered, "help"):
		return helpReply, nil
	case strings.Contains(lowered, "como") && strings.Contains(lowered, "chamado"):
		return openTicketReply, nil
	case strings.Contains(lowered, "problema") || strings.Contains(lowered, "erro"):
		return problemReply, nil
	default:
		return fallbackReply, nil
	}
}
