package usecase

type LeadInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AddLeadsInput struct {
	NicheTag string      `json:"niche_tag"`
	Leads    []LeadInput `json:"leads"`
}

type AddLeadsOutput struct {
	Added       int      `json:"added"`
	Duplicates  int      `json:"duplicates"`
	Blacklisted int      `json:"blacklisted"`
	Invalid     int      `json:"invalid"`
	Errors      []string `json:"errors,omitempty"`
}

type DispatchOutput struct {
	NicheTag  string `json:"niche_tag"`
	Attempted int    `json:"attempted"`
	Sent      int    `json:"sent"`
	Failed    int    `json:"failed"`
}

type ReplyInput struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Preview string `json:"preview"`
}

type ReplyNotification struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Preview string `json:"preview"`
	Known   bool   `json:"known"` // o endereço batia com um lead da base?
}
