package domain

import "time"

// RecordStatus enumerates workflow states for case records. The vocabulary is
// shared between incidents and projects except where RecordKind says
// otherwise; no transition graph is enforced between them.
type RecordStatus string

const (
	StatusPendente              RecordStatus = "Pendente"
	StatusEmAndamento           RecordStatus = "Em Andamento"
	StatusEmDesenvolvimento     RecordStatus = "Em Desenvolvimento"
	StatusAguardandoSolicitante RecordStatus = "Aguardando Solicitante"
	StatusEmEspera              RecordStatus = "Em Espera"
	StatusEmValidacao           RecordStatus = "Em Validação"
	StatusAguardandoAprovacao   RecordStatus = "Aguardando Aprovação"
	StatusEmTestes              RecordStatus = "Em Testes"
	StatusEmHomologacao         RecordStatus = "Em Homologação"
	StatusResolvido             RecordStatus = "Resolvido"
	StatusFinalizado            RecordStatus = "Finalizado"
	StatusCancelado             RecordStatus = "Cancelado"
)

// RecordPriority enumerates urgency levels.
type RecordPriority string

const (
	PriorityMuitoBaixa RecordPriority = "Muito Baixa"
	PriorityBaixa      RecordPriority = "Baixa"
	PriorityMedia      RecordPriority = "Média"
	PriorityAlta       RecordPriority = "Alta"
	PriorityCritica    RecordPriority = "Crítica"
)

// Rank maps a priority to its ordinal for sorting. Unknown values sort last.
func (p RecordPriority) Rank() int {
	switch p {
	case PriorityCritica:
		return 5
	case PriorityAlta:
		return 4
	case PriorityMedia:
		return 3
	case PriorityBaixa:
		return 2
	case PriorityMuitoBaixa:
		return 1
	default:
		return 0
	}
}

// Unassigned is the sentinel assignee for records nobody has claimed.
const Unassigned = "Não Atribuído"

// Treatment is an append-only note attached to a record. Entries are never
// edited or removed once added.
type Treatment struct {
	ID        string
	Content   string
	IsPublic  bool
	Author    string
	Timestamp time.Time
}

// CaseRecord is the aggregate for incidents and projects. The two differ
// only by their RecordKind configuration; ParentIncident is meaningful for
// incidents alone and stays free text with no validated linkage.
type CaseRecord struct {
	ID                 string
	Number             string
	RequestedFor       string
	OpenedBy           string
	Status             RecordStatus
	Priority           RecordPriority
	Impact             string
	Type               string
	AssignedGroup      string
	AssignedTo         string
	Description        string
	WorkNotes          string
	AdditionalComments string
	Conclusion         string
	ParentIncident     string
	Treatments         []Treatment
	TimerMinutes       int
	CreatedAt          time.Time
	LastUpdated        time.Time
}

// QueueEligible reports whether the record can be claimed from the queue.
func (r *CaseRecord) QueueEligible() bool {
	return r.Status == StatusPendente && r.AssignedTo == Unassigned
}

// RecordKind parameterizes the shared record model for a concrete entity.
type RecordKind struct {
	Name         string
	NumberPrefix string
	DefaultGroup string
	DefaultType  string
	// ActiveStatus is the status a record enters when an attendant or
	// developer starts working it.
	ActiveStatus RecordStatus
	Statuses     []RecordStatus
	Types        []string
}

// ValidStatus reports whether s belongs to the kind's status vocabulary.
func (k RecordKind) ValidStatus(s RecordStatus) bool {
	for _, candidate := range k.Statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// KindIncident configures help-desk incidents.
var KindIncident = RecordKind{
	Name:         "incident",
	NumberPrefix: "INC",
	DefaultGroup: "Suporte Técnico",
	DefaultType:  "Outro",
	ActiveStatus: StatusEmAndamento,
	Statuses: []RecordStatus{
		StatusPendente,
		StatusEmAndamento,
		StatusAguardandoSolicitante,
		StatusEmEspera,
		StatusEmValidacao,
		StatusAguardandoAprovacao,
		StatusEmTestes,
		StatusResolvido,
		StatusFinalizado,
		StatusCancelado,
	},
	Types: []string{"Software", "Hardware", "Rede", "Acesso", "Impressora", "Outro"},
}

// KindProject configures development projects.
var KindProject = RecordKind{
	Name:         "project",
	NumberPrefix: "PRJ",
	DefaultGroup: "Projetos",
	DefaultType:  "Desenvolvimento",
	ActiveStatus: StatusEmDesenvolvimento,
	Statuses: []RecordStatus{
		StatusPendente,
		StatusEmDesenvolvimento,
		StatusAguardandoSolicitante,
		StatusEmEspera,
		StatusEmValidacao,
		StatusAguardandoAprovacao,
		StatusEmTestes,
		StatusEmHomologacao,
		StatusResolvido,
		StatusFinalizado,
		StatusCancelado,
	},
	Types: []string{"Desenvolvimento", "Manutenção", "Integração", "Migração", "Análise"},
}
