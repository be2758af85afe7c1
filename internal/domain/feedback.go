package domain

import "time"

// DistrictFeedback es la fila agregada de una sesión distrital completada.
// Las categorías sin responder dentro del límite de turnos quedan en nil.
type DistrictFeedback struct {
	ID                  string     `json:"id"`
	District            string     `json:"district"`
	TrustScore          *float64   `json:"trust_score"`
	ResponsivenessScore *float64   `json:"responsiveness_score"`
	InfrastructureScore *float64   `json:"infrastructure_score"`
	PublicServicesScore *float64   `json:"public_services_score"`
	SafetyScore         *float64   `json:"safety_score"`
	EnvironmentScore    *float64   `json:"environment_score"`
	TransportScore      *float64   `json:"transport_score"`
	CommunityScore      *float64   `json:"community_score"`
	EconomicScore       *float64   `json:"economic_score"`
	GovernanceScore     float64    `json:"governance_score"`
	JusticeScore        float64    `json:"justice_score"`
	JusticeSentiment    Sentiment  `json:"justice_sentiment"`
	OverallScore        float64    `json:"overall_score"`
	CreatedAt           time.Time  `json:"created_at"`
}

// JusticeFeedback es la fila agregada de una sesión de justicia completada.
type JusticeFeedback struct {
	ID                    string    `json:"id"`
	District              string    `json:"district"`
	TrustScore            *float64  `json:"trust_score"`
	ResponsivenessScore   *float64  `json:"responsiveness_score"`
	FairnessScore         *float64  `json:"fairness_score"`
	AccessibilityScore    *float64  `json:"accessibility_score"`
	CorruptionScore       *float64  `json:"corruption_score"`
	CommunityJusticeScore *float64  `json:"community_justice_score"`
	Suggestions           string    `json:"suggestions"`
	JusticeSentiment      Sentiment `json:"justice_sentiment"`
	OverallScore          float64   `json:"overall_score"`
	CreatedAt             time.Time `json:"created_at"`
}

// Reference es una lectura sugerida devuelta al cerrar el flujo de justicia.
type Reference struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// JusticeReferences acompaña la respuesta final del flujo de justicia.
var JusticeReferences = []Reference{
	{Title: "India Justice Report 2020", Link: "https://indiajusticereport.org/files/IJR_2020_National_Factsheet.pdf"},
	{Title: "India Justice Report 2025", Link: "https://indiajusticereport.org/files/IJR%204_Full%20Report_English_Low.pdf"},
	{Title: "Legal Needs in Rural India: Challenges & Response of Legal Aid", Link: "https://clp.law.harvard.edu/wp-content/uploads/2023/06/Legal-needs-in-Rural-India-conference-paper-Sunil-Chauhan.pdf"},
	{Title: "Access to Justice for Marginalised People in India", Link: "https://mslr.pubpub.org/pub/ii7rd56v"},
	{Title: "A Reality Check on Free Legal Aid in India", Link: "https://ijlr.iledu.in/wp-content/uploads/2025/04/V4I524.pdf"},
	{Title: "Responsible Artificial Intelligence for the Indian Justice System", Link: "https://vidhilegalpolicy.in/wp-content/uploads/2021/04/Responsible-AI-in-the-Indian-Justice-System-A-Strategy-Paper.pdf"},
}
