package metrics

import "time"

// PipelineRecorder feeds pipeline stage and run timings into the
// registered metrics. The zero value is ready to use.
type PipelineRecorder struct{}

// ObserveStage records one stage duration.
func (PipelineRecorder) ObserveStage(stage string, seconds float64) {
	ObserveStage(stage, time.Duration(seconds*float64(time.Second)))
}

// ObserveRun records one run duration and its outcome.
func (PipelineRecorder) ObserveRun(success bool, seconds float64) {
	result := ResultSuccess
	if !success {
		result = ResultError
	}
	ObserveAssemblyRun(result, time.Duration(seconds*float64(time.Second)))
}
