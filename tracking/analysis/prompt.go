package analysis

import "fmt"

// Prompt templates are deterministic: identical inputs yield byte-identical
// prompts, which keeps oracle behavior reproducible across retries.

const matchAnalysisTemplate = `
Analyze the following resume against the job description. Provide:
1. Match Percentage (e.g., "Match Percentage: 85%%").
2. Key Strengths: A bulleted list of the candidate's relevant skills/experiences found in the resume that match the job description.
3. Missing Keywords/Skills: A bulleted list of important keywords or skills mentioned in the job description that are NOT clearly present in the resume.
4. Brief Summary: A short (1-2 sentence) summary of the candidate's fit for the role.

Resume Text:
---
%s
---

Job Description:
---
%s
---

Analysis:
`

const interviewQuestionsTemplate = `
Generate a list of 5-7 personalized interview questions based on the following resume and job description. Focus on verifying the candidate's skills and experience mentioned in the resume as they relate to the job requirements. Output ONLY the numbered list of questions.

Resume Text:
---
%s
---

Job Description:
---
%s
---

Questions:
`

const interviewPrepTemplate = `
Based *strictly* on the resume content provided below, generate exactly 10 technical interview questions relevant to the skills and experience listed, along with ideal, concise answers for each. Focus on technical skills, tools, methodologies, and project experiences mentioned. Do not invent skills or experiences not present.

Resume Content:
---
%s
---

Format the output *only* as a valid JSON array of objects. Each object must have exactly two keys: "question" (string) and "answer" (string).

Example Format:
[
  {
    "question": "Can you elaborate on your experience with [Specific Skill/Tool from Resume, e.g., React] as mentioned in the [Project Name or Context from Resume]?",
    "answer": "In the [Project Name or Context], I utilized [Specific Skill/Tool] to [Action Verb, e.g., develop, implement, optimize] [Component/Feature]. For instance, I [Specific task or achievement related to the skill]."
  },
  {
    "question": "Describe a technical challenge you faced while working with [Technology from Resume, e.g., Node.js] and how you resolved it.",
    "answer": "A challenge involved [Brief description of problem]. I addressed it by [Your approach/solution, e.g., implementing caching, refactoring the code, using a specific algorithm], which resulted in [Positive outcome, e.g., improved performance by X%%, reduced errors]."
  }
]

Ensure the entire output is *only* the JSON array, starting with '[' and ending with ']'. Do not include any introductory text, explanations, apologies, or markdown formatting like ` + "```json" + ` before or after the array.
`

// ComposePrompt builds the oracle prompt for a mode. The job description is
// ignored by modes that do not use it.
func ComposePrompt(mode Mode, resumeText, jobDescription string) string {
	switch mode {
	case ModeInterviewQuestions:
		return fmt.Sprintf(interviewQuestionsTemplate, resumeText, jobDescription)
	case ModeInterviewPrep:
		return fmt.Sprintf(interviewPrepTemplate, resumeText)
	default:
		return fmt.Sprintf(matchAnalysisTemplate, resumeText, jobDescription)
	}
}
