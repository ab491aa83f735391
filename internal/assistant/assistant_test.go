package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/grancoffee/helpdesk-service/internal/repository"
	"github.com/grancoffee/helpdesk-service/internal/seed"
	"github.com/grancoffee/helpdesk-service/internal/service"
)

func newTestResponder() *ScriptedResponder {
	knowledge := service.NewKnowledgeService(repository.NewMemoryKnowledgeRepository(seed.KnowledgeArticles()))
	return NewScriptedResponder(knowledge)
}

func TestReplyPrefersKnowledgeBaseHit(t *testing.T) {
	responder := newTestResponder()

	reply, err := responder.Reply(context.Background(), "impressora")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if !strings.Contains(reply, `"Resolver problemas de impressora"`) {
		t.Fatalf("expected the article title in the reply, got %q", reply)
	}
	if !strings.Contains(reply, "Essa informação foi útil?") {
		t.Fatalf("missing follow-up prompt: %q", reply)
	}
}

func TestReplyHelpKeyword(t *testing.T) {
	responder := newTestResponder()

	reply, err := responder.Reply(context.Background(), "preciso de ajuda")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != helpReply {
		t.Fatalf("expected the help script, got %q", reply)
	}
}

func TestReplyHowToOpenTicket(t *testing.T) {
	responder := newTestResponder()

	reply, err := responder.Reply(context.Background(), "como abrir um chamado?")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != openTicketReply {
		t.Fatalf("expected the ticket walkthrough, got %q", reply)
	}
}

func TestReplyProblemProbe(t *testing.T) {
	responder := newTestResponder()

	reply, err := responder.Reply(context.Background(), "estou com um erro estranho aqui")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != problemReply {
		t.Fatalf("expected the diagnostic probe, got %q", reply)
	}
}

func TestReplyFallback(t *testing.T) {
	responder := newTestResponder()

	reply, err := responder.Reply(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != fallbackReply {
		t.Fatalf("expected the fallback script, got %q", reply)
	}
}

func TestReplyEmptyMessageSkipsSearch(t *testing.T) {
	responder := newTestResponder()

	reply, err := responder.Reply(context.Background(), "   ")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != fallbackReply {
		t.Fatalf("expected the fallback for a blank message, got %q", reply)
	}
}
