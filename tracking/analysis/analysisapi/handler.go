package analysisapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/jobtrack/tracking/analysis"
	"github.com/Abraxas-365/jobtrack/tracking/analysis/analysissrv"
)

type AnalysisHandlers struct {
	pipeline    *analysissrv.Pipeline
	maxFileSize int64
}

func NewAnalysisHandlers(pipeline *analysissrv.Pipeline, maxFileSize int64) *AnalysisHandlers {
	return &AnalysisHandlers{
		pipeline:    pipeline,
		maxFileSize: maxFileSize,
	}
}

func (h *AnalysisHandlers) RegisterRoutes(app *fiber.App) {
	app.Post("/api/ats/analyze-ai", h.AnalyzeResume)
	app.Post("/api/interview-prep/interview-questions", h.InterviewQuestions)
}

// AnalyzeResume runs resume-vs-job-description analysis.
// POST /api/ats/analyze-ai
//
// Multipart fields: "resume" (file), "jobDescription", and "analysisType"
// selecting match analysis (default) or a free-text question list.
func (h *AnalysisHandlers) AnalyzeResume(c *fiber.Ctx) error {
	mode := analysis.Mode(c.FormValue("analysisType", string(analysis.ModeMatchAnalysis)))
	if mode == analysis.ModeInterviewPrep {
		// The structured variant has its own endpoint and response shape.
		return analysis.ErrInvalidMode(string(mode))
	}

	upload, err := h.readUpload(c)
	if err != nil {
		return err
	}

	result, err := h.pipeline.Run(c.Context(), upload, mode, c.FormValue("jobDescription"))
	if err != nil {
		return err
	}

	if mode == analysis.ModeInterviewQuestions {
		return c.JSON(analysis.InterviewQuestionsResponse{InterviewQuestions: result.RawText})
	}
	return c.JSON(analysis.ToMatchResponse(result.Match))
}

// InterviewQuestions generates structured question/answer pairs from the
// resume alone.
// POST /api/interview-prep/interview-questions
func (h *AnalysisHandlers) InterviewQuestions(c *fiber.Ctx) error {
	upload, err := h.readUpload(c)
	if err != nil {
		return err
	}

	result, err := h.pipeline.Run(c.Context(), upload, analysis.ModeInterviewPrep, "")
	if err != nil {
		return err
	}

	return c.JSON(analysis.InterviewPrepResponse{QuestionsAndAnswers: result.Questions})
}

// readUpload pulls the "resume" multipart file into memory, enforcing the
// size limit before any bytes are read.
func (h *AnalysisHandlers) readUpload(c *fiber.Ctx) (*analysissrv.Upload, error) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return nil, analysis.ErrMissingFile()
	}

	if fileHeader.Size > h.maxFileSize {
		return nil, analysis.ErrFileTooLarge(fileHeader.Size, h.maxFileSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, analysis.ErrSpoolFailed(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		return nil, analysis.ErrSpoolFailed(err)
	}
	if int64(len(data)) > h.maxFileSize {
		return nil, analysis.ErrFileTooLarge(int64(len(data)), h.maxFileSize)
	}

	return &analysissrv.Upload{
		Filename: fileHeader.Filename,
		Data:     data,
	}, nil
}
