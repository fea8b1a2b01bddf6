// Package parsing turns extracted CV text into a structured candidate profile.
package parsing

import (
	"regexp"

	"github.com/jonathan/talentdesk/internal/ingestion"
	"github.com/jonathan/talentdesk/internal/skills"
	"github.com/jonathan/talentdesk/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// ExtractFields builds a profile from CV text. Text carrying an extraction
// failure marker yields a scanned profile named after the file.
func ExtractFields(text, fileName string) types.CandidateProfile {
	if ingestion.IsSentinel(text) {
		return scannedProfile(text, fileName)
	}

	profile := types.CandidateProfile{
		Email:             emailRe.FindString(text),
		Phone:             phoneRe.FindString(text),
		FullName:          extractName(text, fileName),
		Skills:            skills.Match(text),
		YearsOfExperience: extractYears(text),
		Education:         extractEducation(text),
		Experience:        extractExperience(text),
		SocialLinks:       extractSocialLinks(text),
		ProjectLinks:      extractProjectLinks(text),
		Certificates:      extractCertificates(text),
		RawText:           text,
	}
	profile.Summary, _ = FirstMatch(SummaryRules, text)
	profile.Normalize()
	return profile
}

// FromResult builds a profile from an extraction result, branching on its
// failure kind rather than on marker text.
func FromResult(res ingestion.Result) types.CandidateProfile {
	if !res.OK() {
		return scannedProfile(res.Sentinel(), res.FileName)
	}
	return ExtractFields(res.Text, res.FileName)
}

func scannedProfile(text, fileName string) types.CandidateProfile {
	profile := types.CandidateProfile{
		FullName:  ingestion.NameFromFilename(fileName),
		IsScanned: true,
		RawText:   text,
	}
	profile.Normalize()
	return profile
}
