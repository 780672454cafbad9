package analysissrv

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Abraxas-365/jobtrack/internal/ai/oracle"
	"github.com/Abraxas-365/jobtrack/pkg/errx"
	"github.com/Abraxas-365/jobtrack/tracking/analysis"
)

// fakeOracle returns a canned response and counts invocations.
type fakeOracle struct {
	response string
	err      error
	calls    int
}

func (f *fakeOracle) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestPipeline(t *testing.T, o oracle.Oracle) (*Pipeline, string) {
	t.Helper()
	spoolDir := t.TempDir()
	return NewPipeline(o, spoolDir, 5*time.Second), spoolDir
}

func txtUpload(content string) *Upload {
	return &Upload{Filename: "resume.txt", Data: []byte(content)}
}

func assertSpoolEmpty(t *testing.T, spoolDir string) {
	t.Helper()
	entries, err := os.ReadDir(spoolDir)
	if err != nil {
		t.Fatalf("read spool dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("spool dir not cleaned up, %d files remain", len(entries))
	}
}

func TestRunMissingFile(t *testing.T) {
	fake := &fakeOracle{}
	p, _ := newTestPipeline(t, fake)

	for _, upload := range []*Upload{nil, {Filename: "resume.txt"}} {
		_, err := p.Run(context.Background(), upload, analysis.ModeMatchAnalysis, "job desc")
		e, ok := err.(*errx.Error)
		if !ok || e.Code != analysis.ErrMissingFileCode {
			t.Errorf("expected missing file error, got %v", err)
		}
	}
	if fake.calls != 0 {
		t.Errorf("oracle called %d times for missing file", fake.calls)
	}
}

func TestRunMissingJobDescription(t *testing.T) {
	fake := &fakeOracle{}
	p, spoolDir := newTestPipeline(t, fake)

	_, err := p.Run(context.Background(), txtUpload("resume"), analysis.ModeMatchAnalysis, "   ")
	e, ok := err.(*errx.Error)
	if !ok || e.Code != analysis.ErrMissingJobDescriptionCode {
		t.Fatalf("expected missing job description error, got %v", err)
	}
	if fake.calls != 0 {
		t.Errorf("oracle called %d times", fake.calls)
	}
	assertSpoolEmpty(t, spoolDir)
}

func TestRunInterviewPrepNeedsNoJobDescription(t *testing.T) {
	fake := &fakeOracle{response: `[{"question": "Q1", "answer": "A1"}]`}
	p, spoolDir := newTestPipeline(t, fake)

	result, err := p.Run(context.Background(), txtUpload("Go developer"), analysis.ModeInterviewPrep, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Questions) != 1 || result.Questions[0].Question != "Q1" {
		t.Errorf("unexpected result: %+v", result)
	}
	assertSpoolEmpty(t, spoolDir)
}

func TestRunUnsupportedTypeSkipsOracle(t *testing.T) {
	fake := &fakeOracle{}
	p, spoolDir := newTestPipeline(t, fake)

	upload := &Upload{Filename: "malware.exe", Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}}
	_, err := p.Run(context.Background(), upload, analysis.ModeMatchAnalysis, "job desc")

	e, ok := err.(*errx.Error)
	if !ok || e.Code != analysis.ErrUnsupportedFileTypeCode {
		t.Fatalf("expected unsupported file type error, got %v", err)
	}
	if fake.calls != 0 {
		t.Errorf("oracle called %d times for unsupported upload", fake.calls)
	}
	assertSpoolEmpty(t, spoolDir)
}

func TestRunEmptyTextSkipsOracle(t *testing.T) {
	fake := &fakeOracle{}
	p, spoolDir := newTestPipeline(t, fake)

	_, err := p.Run(context.Background(), txtUpload("   \n\t "), analysis.ModeMatchAnalysis, "job desc")

	e, ok := err.(*errx.Error)
	if !ok || e.Code != analysis.ErrNoExtractableTextCode {
		t.Fatalf("expected no extractable text error, got %v", err)
	}
	if fake.calls != 0 {
		t.Errorf("oracle called %d times", fake.calls)
	}
	assertSpoolEmpty(t, spoolDir)
}

func TestRunMatchAnalysisSuccess(t *testing.T) {
	fake := &fakeOracle{response: "Match Percentage: 85%\n\nKey Strengths:\n- Go\n\nMissing Skills:\n- Rust"}
	p, spoolDir := newTestPipeline(t, fake)

	result, err := p.Run(context.Background(), txtUpload("Go developer, 5 years"), analysis.ModeMatchAnalysis, "Senior Go engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match == nil {
		t.Fatal("expected match result")
	}
	if result.Match.MatchPercentage == nil || *result.Match.MatchPercentage != "85%" {
		t.Errorf("match percentage = %v", result.Match.MatchPercentage)
	}
	if fake.calls != 1 {
		t.Errorf("oracle called %d times, want 1", fake.calls)
	}
	assertSpoolEmpty(t, spoolDir)
}

func TestRunQuotaFailureCleansUp(t *testing.T) {
	fake := &fakeOracle{err: &oracle.Failure{Kind: oracle.FailureQuota, Reason: "out of quota"}}
	p, spoolDir := newTestPipeline(t, fake)

	_, err := p.Run(context.Background(), txtUpload("Go developer"), analysis.ModeMatchAnalysis, "job desc")

	e, ok := err.(*errx.Error)
	if !ok || e.Code != analysis.ErrOracleQuotaCode {
		t.Fatalf("expected quota error, got %v", err)
	}
	if e.HTTPStatus != 429 {
		t.Errorf("quota error status = %d, want 429", e.HTTPStatus)
	}
	assertSpoolEmpty(t, spoolDir)
}

func TestRunSafetyBlockMapsToInputError(t *testing.T) {
	fake := &fakeOracle{err: &oracle.Failure{Kind: oracle.FailureSafety, Reason: "blocked"}}
	p, spoolDir := newTestPipeline(t, fake)

	_, err := p.Run(context.Background(), txtUpload("resume"), analysis.ModeMatchAnalysis, "job desc")

	e, ok := err.(*errx.Error)
	if !ok || e.Code != analysis.ErrOracleSafetyBlockedCode {
		t.Fatalf("expected safety block error, got %v", err)
	}
	if e.HTTPStatus != 400 {
		t.Errorf("safety block status = %d, want 400", e.HTTPStatus)
	}
	assertSpoolEmpty(t, spoolDir)
}

func TestRunBadModelOutput(t *testing.T) {
	fake := &fakeOracle{response: "I am sorry, I cannot produce JSON today."}
	p, spoolDir := newTestPipeline(t, fake)

	_, err := p.Run(context.Background(), txtUpload("Go developer"), analysis.ModeInterviewPrep, "")

	e, ok := err.(*errx.Error)
	if !ok || e.Code != analysis.ErrBadModelOutputCode {
		t.Fatalf("expected bad model output error, got %v", err)
	}
	if e.Details["parse_failure"] != string(analysis.ParseNotJson) {
		t.Errorf("expected not_json detail, got %v", e.Details)
	}
	assertSpoolEmpty(t, spoolDir)
}

func TestRunIsReusableAcrossRequests(t *testing.T) {
	fake := &fakeOracle{response: "Numbered questions here"}
	p, spoolDir := newTestPipeline(t, fake)

	for i := 0; i < 2; i++ {
		result, err := p.Run(context.Background(), txtUpload("resume"), analysis.ModeInterviewQuestions, "job desc")
		if err != nil {
			t.Fatalf("run %d failed: %v", i, err)
		}
		if result.RawText != "Numbered questions here" {
			t.Errorf("run %d unexpected result: %+v", i, result)
		}
	}
	if fake.calls != 2 {
		t.Errorf("oracle called %d times, want 2", fake.calls)
	}
	assertSpoolEmpty(t, spoolDir)
}
