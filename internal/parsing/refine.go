package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/talentdesk/internal/llm"
	"github.com/jonathan/talentdesk/internal/skills"
	"github.com/jonathan/talentdesk/internal/types"
)

const maxPlausibleYears = 60

// Refiner fills profile fields that the heuristics left empty by asking a
// language model. Fields the heuristics already found are never overwritten.
type Refiner struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewRefiner creates a Refiner on the standard model tier.
func NewRefiner(client llm.Client) *Refiner {
	return &Refiner{client: client, tier: llm.TierStandard}
}

// refinedFields mirrors llm.CandidateProfileSchema.
type refinedFields struct {
	FullName          string   `json:"full_name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Skills            []string `json:"skills"`
	YearsOfExperience int      `json:"years_of_experience"`
	Education         []string `json:"education"`
	Summary           string   `json:"summary"`
}

// Refine updates profile in place. Scanned profiles and complete profiles are
// left alone without calling the model.
func (r *Refiner) Refine(ctx context.Context, profile *types.CandidateProfile) error {
	missing := profile.MissingFields()
	if profile.IsScanned || strings.TrimSpace(profile.RawText) == "" || len(missing) == 0 {
		return nil
	}

	prompt := llm.BuildExtractionPrompt(llm.CandidateProfileSchema(), profile.RawText)
	responseText, err := r.client.GenerateJSON(ctx, prompt, r.tier)
	if err != nil {
		return &RefineError{Stage: StageGenerate, Missing: missing, Err: err}
	}

	var refined refinedFields
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &refined); err != nil {
		return &RefineError{Stage: StageDecode, Missing: missing, Err: err}
	}

	mergeRefined(profile, refined)
	return nil
}

// mergeRefined copies model output into empty fields, keeping only values
// that pass the same checks the heuristics apply.
func mergeRefined(profile *types.CandidateProfile, refined refinedFields) {
	if profile.FullName == "" {
		if words := strings.Fields(refined.FullName); plausibleName(words) {
			profile.FullName = strings.Join(words, " ")
		}
	}
	if profile.Email == "" {
		profile.Email = emailRe.FindString(refined.Email)
	}
	if profile.Phone == "" {
		profile.Phone = phoneRe.FindString(refined.Phone)
	}
	if len(profile.Skills) == 0 {
		profile.Skills = skills.Match(strings.Join(refined.Skills, "\n"))
	}
	if profile.YearsOfExperience == 0 && refined.YearsOfExperience > 0 && refined.YearsOfExperience <= maxPlausibleYears {
		profile.YearsOfExperience = refined.YearsOfExperience
	}
	if len(profile.Education) == 0 {
		var education []string
		for _, e := range refined.Education {
			education = append(education, strings.TrimSpace(e))
		}
		profile.Education = unique(education)
	}
	if profile.Summary == "" {
		profile.Summary = truncate(strings.TrimSpace(refined.Summary), maxSummaryLen)
	}
	profile.Normalize()
}
