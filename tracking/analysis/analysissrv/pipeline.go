// Package analysissrv runs the resume analysis pipeline: spool the upload,
// extract text, compose a prompt, call the AI oracle, parse the response.
package analysissrv

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/Abraxas-365/jobtrack/internal/ai/oracle"
	"github.com/Abraxas-365/jobtrack/internal/extract"
	"github.com/Abraxas-365/jobtrack/pkg/logx"
	"github.com/Abraxas-365/jobtrack/tracking/analysis"
)

// Upload is one resume file as received from the transport layer.
type Upload struct {
	Filename string
	Data     []byte
}

// Pipeline orchestrates a single analysis run end to end. It holds no
// per-request state and is safe for concurrent use.
type Pipeline struct {
	oracle   oracle.Oracle
	spoolDir string
	timeout  time.Duration
}

// NewPipeline creates the analysis pipeline. spoolDir is where uploads are
// written for the duration of one run; empty means the OS temp directory.
func NewPipeline(o oracle.Oracle, spoolDir string, timeout time.Duration) *Pipeline {
	return &Pipeline{
		oracle:   o,
		spoolDir: spoolDir,
		timeout:  timeout,
	}
}

// Run executes one analysis. The upload is spooled to a temp file that is
// removed before Run returns on every path, success or failure, including
// caller cancellation. Cleanup failures are logged and never change the
// outcome.
func (p *Pipeline) Run(ctx context.Context, upload *Upload, mode analysis.Mode, jobDescription string) (*analysis.Result, error) {
	if upload == nil || len(upload.Data) == 0 {
		return nil, analysis.ErrMissingFile()
	}
	if !mode.Valid() {
		return nil, analysis.ErrInvalidMode(string(mode))
	}
	if mode.Spec().JobDescriptionRequired && strings.TrimSpace(jobDescription) == "" {
		return nil, analysis.ErrMissingJobDescription()
	}

	spoolPath, err := p.spool(upload)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(spoolPath); err != nil {
			logx.Warnf("failed to remove spooled upload %s: %v", spoolPath, err)
		}
	}()

	resumeText, err := p.extractText(spoolPath, upload.Filename)
	if err != nil {
		return nil, err
	}

	prompt := analysis.ComposePrompt(mode, resumeText, jobDescription)

	octx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.oracle.Complete(octx, prompt)
	if err != nil {
		return nil, mapOracleError(err)
	}

	return p.parse(mode, raw)
}

// spool writes the upload to a temp file so the rest of the run reads from
// disk, mirroring how uploads flow through the transport layer. The caller
// owns removal of the returned path.
func (p *Pipeline) spool(upload *Upload) (string, error) {
	f, err := os.CreateTemp(p.spoolDir, "resume-*"+extract.ExtFromFilename(upload.Filename))
	if err != nil {
		return "", analysis.ErrSpoolFailed(err)
	}

	if _, err := f.Write(upload.Data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", analysis.ErrSpoolFailed(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", analysis.ErrSpoolFailed(err)
	}

	return f.Name(), nil
}

func (p *Pipeline) extractText(path, filename string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", analysis.ErrCorruptDocument(err)
	}

	text, err := extract.Extract(data, extract.ExtFromFilename(filename))
	switch {
	case err == nil:
		return text, nil
	case errors.Is(err, extract.ErrUnsupported):
		return "", analysis.ErrUnsupportedFileType(extract.ExtFromFilename(filename))
	case errors.Is(err, extract.ErrNoText):
		return "", analysis.ErrNoExtractableText()
	default:
		return "", analysis.ErrCorruptDocument(err)
	}
}

func (p *Pipeline) parse(mode analysis.Mode, raw string) (*analysis.Result, error) {
	result := &analysis.Result{Mode: mode}

	switch mode {
	case analysis.ModeMatchAnalysis:
		result.Match = analysis.ParseMatchAnalysis(raw)
	case analysis.ModeInterviewQuestions:
		result.RawText = raw
	case analysis.ModeInterviewPrep:
		pairs, err := analysis.ParseInterviewQuestions(raw)
		if err != nil {
			var pe *analysis.ParseError
			e := analysis.ErrBadModelOutput(err)
			if errors.As(err, &pe) {
				e = e.WithDetail("parse_failure", string(pe.Kind))
			}
			return nil, e
		}
		result.Questions = pairs
	}

	return result, nil
}

// mapOracleError translates classified oracle failures into API errors.
func mapOracleError(err error) error {
	var failure *oracle.Failure
	if !errors.As(err, &failure) {
		return analysis.ErrOracleFailed(err)
	}

	switch failure.Kind {
	case oracle.FailureConfig:
		return analysis.ErrOracleConfig(err)
	case oracle.FailureQuota:
		return analysis.ErrOracleQuota(err)
	case oracle.FailureSafety:
		return analysis.ErrOracleSafetyBlocked(err)
	case oracle.FailureTransport:
		return analysis.ErrOracleTransport(err)
	default:
		return analysis.ErrOracleFailed(err)
	}
}
