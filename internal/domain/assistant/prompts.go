package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

func interviewPrompt(jobTitle string) Prompt {
	return Prompt{
		System: systemPrompt,
		User: fmt.Sprintf("Generate 5 insightful interview questions for a %q position at PTS Rwanda. "+
			"Include a mix of behavioral, situational and technical questions relevant to transport and logistics. "+
			`Respond as {"questions": ["..."]}.`, jobTitle),
	}
}

func jobDescriptionPrompt(jobTitle string, keywords []string) Prompt {
	extra := ""
	if len(keywords) > 0 {
		extra = fmt.Sprintf(" Emphasise these keywords: %s.", strings.Join(keywords, ", "))
	}
	return Prompt{
		System: systemPrompt,
		User: fmt.Sprintf("Write a professional job description for a %q role at PTS Rwanda.%s "+
			`Respond as {"title": "", "summary": "", "responsibilities": [""], "qualifications": [""]}.`,
			jobTitle, extra),
	}
}

func checklistPrompt(jobTitle, kind string) Prompt {
	return Prompt{
		System: systemPrompt,
		User: fmt.Sprintf("Create a concise %s checklist of 8 to 12 items for a %q at PTS Rwanda. "+
			`Respond as {"checklist": ["..."]}.`, strings.ToLower(kind), jobTitle),
	}
}

func insightsPrompt(facts WorkforceFacts) (Prompt, error) {
	data, err := json.Marshal(facts)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{
		System: systemPrompt,
		User: "Analyse this workforce summary and return 3 to 5 insights, each either a Risk or an Opportunity, " +
			"with a headline, a detail sentence and a recommendation. " +
			`Respond as {"insights": [{"type": "Risk", "headline": "", "detail": "", "recommendation": ""}]}. ` +
			"Data: " + string(data),
	}, nil
}

type talentProfile struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Title  string   `json:"jobTitle"`
	Skills []string `json:"skills"`
}

func talentPrompt(required []string, profiles []talentProfile) (Prompt, error) {
	data, err := json.Marshal(profiles)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{
		System: systemPrompt,
		User: fmt.Sprintf("Required skills: %s. Rank up to 3 employees from the list below by how well their skills match. "+
			"For each give matchPercentage 0-100, matchingSkills, missingSkills and a one-sentence justification. "+
			`Respond as {"topCandidates": [{"employeeId": "", "employeeName": "", "matchPercentage": 0, `+
			`"matchingSkills": [""], "missingSkills": [""], "justification": ""}]}. Employees: %s`,
			strings.Join(required, ", "), string(data)),
	}, nil
}
