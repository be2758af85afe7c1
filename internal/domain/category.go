package domain

// CategoryID identifica un tema de feedback ("trust", "fairness", etc).
type CategoryID string

const (
	CategoryTrust              CategoryID = "trust"
	CategoryResponsiveness     CategoryID = "responsiveness"
	CategoryInfrastructure     CategoryID = "infrastructure"
	CategoryPublicServices     CategoryID = "public_services"
	CategorySafety             CategoryID = "safety"
	CategoryEnvironment        CategoryID = "environment"
	CategoryTransport          CategoryID = "transport"
	CategoryCommunity          CategoryID = "community"
	CategoryEconomic           CategoryID = "economic"
	CategoryJustice            CategoryID = "justice"
	CategoryFairness           CategoryID = "fairness"
	CategoryAccessibility      CategoryID = "accessibility"
	CategoryCorruption         CategoryID = "corruption"
	CategoryCommunityJustice   CategoryID = "community_justice"
	CategoryJusticeSuggestions CategoryID = "justice_suggestions"
	CategoryTimelyResolution   CategoryID = "timely_resolution"
	CategoryLegalAwareness     CategoryID = "legal_awareness"
	CategorySupportServices    CategoryID = "support_services"
	CategoryPoliceCooperation  CategoryID = "police_cooperation"
)

// Category agrupa el prompt y las keywords de relevancia de un tema.
// Freeform marca temas que se recogen textualmente y no entran en promedios.
type Category struct {
	ID       CategoryID
	Prompt   string
	Keywords []string
	Freeform bool
}

// CategorySet es un grupo nombrado de categorías de un flujo.
type CategorySet struct {
	Name       string
	Categories []Category
}

// Category busca una categoría del set por ID.
func (s CategorySet) Category(id CategoryID) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Contains indica si el set incluye la categoría.
func (s CategorySet) Contains(id CategoryID) bool {
	_, ok := s.Category(id)
	return ok
}

const (
	SetGovernance = "governance"
	SetJustice    = "justice"
)

// GovernanceSet: 9 categorías de gobernanza local del flujo distrital.
var GovernanceSet = CategorySet{
	Name: SetGovernance,
	Categories: []Category{
		{ID: CategoryTrust, Prompt: "How much do you trust your local administration?",
			Keywords: []string{"trust", "honest", "transparent", "reliable"}},
		{ID: CategoryResponsiveness, Prompt: "How responsive are the services in your district?",
			Keywords: []string{"fast", "responsive", "quick", "helpful"}},
		{ID: CategoryInfrastructure, Prompt: "What do you think about the infrastructure in your district?",
			Keywords: []string{"road", "transport", "building", "infrastructure", "utilities"}},
		{ID: CategoryPublicServices, Prompt: "How satisfied are you with health, education, and sanitation services?",
			Keywords: []string{"health", "education", "hospital", "school", "sanitation"}},
		{ID: CategorySafety, Prompt: "Do you feel safe in your district?",
			Keywords: []string{"safe", "security", "police", "crime", "danger"}},
		{ID: CategoryEnvironment, Prompt: "How would you rate the cleanliness and environmental quality of your district?",
			Keywords: []string{"clean", "pollution", "green", "environment", "waste"}},
		{ID: CategoryTransport, Prompt: "How effective is the public transport and road infrastructure?",
			Keywords: []string{"bus", "train", "road", "traffic", "transport"}},
		{ID: CategoryCommunity, Prompt: "Are citizens involved in local decisions?",
			Keywords: []string{"community", "participation", "citizen", "involvement"}},
		{ID: CategoryEconomic, Prompt: "Are there enough job and business opportunities in your district?",
			Keywords: []string{"job", "business", "opportunity", "economy", "market"}},
	},
}

// DistrictJusticeSet: 6 categorías de justicia del flujo distrital.
var DistrictJusticeSet = CategorySet{
	Name: SetJustice,
	Categories: []Category{
		{ID: CategoryJustice, Prompt: "How do you think justice can be achieved in your district?",
			Keywords: []string{"justice", "law", "fair", "rights", "court", "equality"}},
		{ID: CategoryFairness, Prompt: "Do you think laws are applied fairly in your district?",
			Keywords: []string{"fair", "unfair", "bias", "impartial", "justice"}},
		{ID: CategoryAccessibility, Prompt: "Are legal and grievance services easily accessible?",
			Keywords: []string{"access", "reachable", "available", "easy", "helpful"}},
		{ID: CategoryCorruption, Prompt: "Have you observed corruption or unfair practices?",
			Keywords: []string{"corrupt", "bribe", "unfair", "illegal", "fraud"}},
		{ID: CategoryCommunityJustice, Prompt: "Do local communities resolve issues fairly?",
			Keywords: []string{"community", "local", "participation", "resolve", "fair"}},
		{ID: CategoryJusticeSuggestions, Prompt: "What changes would make justice more effective in your district?",
			Freeform: true},
	},
}

// JusticeSet: las 11 categorías del flujo de justicia exhaustivo.
var JusticeSet = CategorySet{
	Name: SetJustice,
	Categories: []Category{
		{ID: CategoryTrust, Prompt: "How much do you trust the justice system in your district?",
			Keywords: []string{"trust", "honest", "reliable", "transparent"}},
		{ID: CategoryResponsiveness, Prompt: "How responsive are legal and grievance services?",
			Keywords: []string{"fast", "responsive", "quick", "helpful"}},
		{ID: CategoryFairness, Prompt: "Do you think laws are applied fairly in your district?",
			Keywords: []string{"fair", "unfair", "bias", "impartial", "justice"}},
		{ID: CategoryAccessibility, Prompt: "Are legal services easily accessible to everyone?",
			Keywords: []string{"access", "reachable", "available", "easy", "helpful"}},
		{ID: CategoryCorruption, Prompt: "Have you observed corruption or unfair practices in legal matters?",
			Keywords: []string{"corrupt", "bribe", "unfair", "illegal", "fraud"}},
		{ID: CategoryCommunityJustice, Prompt: "Do local communities resolve issues fairly?",
			Keywords: []string{"community", "local", "participation", "resolve", "fair"}},
		{ID: CategoryJusticeSuggestions, Prompt: "What changes would make justice more effective in your district?",
			Freeform: true},
		{ID: CategoryTimelyResolution, Prompt: "Do cases get resolved in a timely manner?",
			Keywords: []string{"timely", "delay", "slow", "efficient", "quick"}},
		{ID: CategoryLegalAwareness, Prompt: "Are citizens aware of their legal rights?",
			Keywords: []string{"aware", "knowledge", "rights", "inform", "understand"}},
		{ID: CategorySupportServices, Prompt: "Are there enough support services like legal aid and counseling?",
			Keywords: []string{"aid", "support", "counsel", "assistance", "help"}},
		{ID: CategoryPoliceCooperation, Prompt: "Do you feel the police cooperate fairly in legal disputes?",
			Keywords: []string{"police", "cooperate", "helpful", "support"}},
	},
}
