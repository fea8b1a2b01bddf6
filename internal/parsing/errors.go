package parsing

import "fmt"

// RefineStage names the refinement step that failed.
type RefineStage string

const (
	// StageGenerate is the model call itself.
	StageGenerate RefineStage = "generate"
	// StageDecode is reading the model reply as profile JSON.
	StageDecode RefineStage = "decode"
)

// RefineError reports a refinement that left the profile as the heuristics
// produced it. Missing lists the fields the model was asked to fill.
type RefineError struct {
	Stage   RefineStage
	Missing []string
	Err     error
}

func (e *RefineError) Error() string {
	return fmt.Sprintf("refine %d missing field(s): %s failed: %v", len(e.Missing), e.Stage, e.Err)
}

func (e *RefineError) Unwrap() error {
	return e.Err
}
