package types

// SocialLinks holds the profile links found in a CV.
type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// IsEmpty reports whether no social link was found.
func (l SocialLinks) IsEmpty() bool {
	return l.GitHub == "" && l.LinkedIn == "" && l.Portfolio == ""
}

// CandidateProfile is the structured result of parsing one CV.
// YearsOfExperience is 0 when the CV does not state it.
type CandidateProfile struct {
	FullName          string      `json:"full_name"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Skills            []string    `json:"skills"`
	YearsOfExperience int         `json:"years_of_experience"`
	Education         []string    `json:"education"`
	Experience        []string    `json:"experience"`
	Summary           string      `json:"summary"`
	SocialLinks       SocialLinks `json:"social_links"`
	ProjectLinks      []string    `json:"project_links"`
	Certificates      []string    `json:"certificates"`
	IsScanned         bool        `json:"is_scanned"`
	RawText           string      `json:"raw_text,omitempty"`
}

// Normalize replaces nil slices with empty ones so profiles serialize as arrays.
func (p *CandidateProfile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Education == nil {
		p.Education = []string{}
	}
	if p.Experience == nil {
		p.Experience = []string{}
	}
	if p.ProjectLinks == nil {
		p.ProjectLinks = []string{}
	}
	if p.Certificates == nil {
		p.Certificates = []string{}
	}
}

// MissingFields lists the refinable fields that heuristics left empty.
func (p *CandidateProfile) MissingFields() []string {
	var missing []string
	if p.FullName == "" {
		missing = append(missing, "full_name")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(p.Skills) == 0 {
		missing = append(missing, "skills")
	}
	if p.YearsOfExperience == 0 {
		missing = append(missing, "years_of_experience")
	}
	if len(p.Education) == 0 {
		missing = append(missing, "education")
	}
	if p.Summary == "" {
		missing = append(missing, "summary")
	}
	return missing
}
