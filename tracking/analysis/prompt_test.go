package analysis

import (
	"strings"
	"testing"
)

func TestComposePromptIsDeterministic(t *testing.T) {
	a := ComposePrompt(ModeMatchAnalysis, "resume text", "job text")
	b := ComposePrompt(ModeMatchAnalysis, "resume text", "job text")
	if a != b {
		t.Fatal("identical inputs produced different prompts")
	}
}

func TestComposePromptMatchAnalysis(t *testing.T) {
	p := ComposePrompt(ModeMatchAnalysis, "Go developer, 5 years", "Senior Go engineer")

	for _, want := range []string{
		"Match Percentage",
		"Key Strengths",
		"Missing Keywords/Skills",
		"Brief Summary",
		"Go developer, 5 years",
		"Senior Go engineer",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposePromptInterviewQuestions(t *testing.T) {
	p := ComposePrompt(ModeInterviewQuestions, "resume body", "job body")

	if !strings.Contains(p, "5-7 personalized interview questions") {
		t.Error("prompt missing question instruction")
	}
	if !strings.Contains(p, "numbered list of questions") {
		t.Error("prompt missing output format instruction")
	}
	if !strings.Contains(p, "resume body") || !strings.Contains(p, "job body") {
		t.Error("prompt missing inputs")
	}
}

func TestComposePromptInterviewPrep(t *testing.T) {
	p := ComposePrompt(ModeInterviewPrep, "resume body", "ignored")

	if !strings.Contains(p, "exactly 10 technical interview questions") {
		t.Error("prompt missing question instruction")
	}
	if !strings.Contains(p, `"question" (string) and "answer" (string)`) {
		t.Error("prompt missing JSON shape instruction")
	}
	if !strings.Contains(p, "Do not invent skills or experiences not present") {
		t.Error("prompt missing grounding instruction")
	}
	if strings.Contains(p, "ignored") {
		t.Error("job description leaked into a resume-only prompt")
	}
}

func TestModeSpecContracts(t *testing.T) {
	if !ModeMatchAnalysis.Spec().JobDescriptionRequired {
		t.Error("match analysis should require a job description")
	}
	if !ModeInterviewQuestions.Spec().JobDescriptionRequired {
		t.Error("interview questions should require a job description")
	}
	if ModeInterviewPrep.Spec().JobDescriptionRequired {
		t.Error("interview prep should not require a job description")
	}
	if !ModeInterviewPrep.Spec().Structured {
		t.Error("interview prep should be structured")
	}
	if Mode("bogus").Valid() {
		t.Error("unknown mode should be invalid")
	}
}
