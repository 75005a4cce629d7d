package application

import (
	"context"
	"fmt"
	"log"
	"time"

	assembly "arx-bim/internal/assembly/domain"
)

// Stage names the steps of the assembly state machine in execution order.
type Stage string

const (
	StageGeometryExtraction      Stage = "geometry_extraction"
	StageElementClassification   Stage = "element_classification"
	StageSpatialOrganization     Stage = "spatial_organization"
	StageSystemIntegration       Stage = "system_integration"
	StageRelationshipEstablish   Stage = "relationship_establishment"
	StageConflictResolution      Stage = "conflict_resolution"
	StageConsistencyValidation   Stage = "consistency_validation"
	StagePerformanceOptimization Stage = "performance_optimization"
)

// AssemblyContext carries the collections accumulated across stages. Each
// stage takes the context, adds to it, and hands it forward; no stage
// reaches back into pipeline state.
type AssemblyContext struct {
	AssemblyID    string
	Elements      []*assembly.Element
	Systems       []*assembly.System
	Spaces        []*assembly.Space
	Relationships []*assembly.Relationship
	Conflicts     []*assembly.Conflict
	Validation    assembly.ValidationReport
	Metrics       map[string]float64
	Warnings      []string
}

// StageRecorder receives stage and run timings. Implementations must
// tolerate concurrent runs.
type StageRecorder interface {
	ObserveStage(stage string, seconds float64)
	ObserveRun(success bool, seconds float64)
}

// Pipeline sequences the assembly stages. One pipeline value may serve
// many runs, but a single run's collections are never shared across runs.
type Pipeline struct {
	cfg       assembly.Config
	builder   *ElementBuilder
	organizer *SpatialOrganizer
	conflicts *ConflictDetector
	optimizer *Optimizer
	recorder  StageRecorder
	logger    *log.Logger
}

// PipelineOption tweaks pipeline construction.
type PipelineOption func(*Pipeline)

// WithClusterDistance overrides the spatial clustering radius.
func WithClusterDistance(distance float64) PipelineOption {
	return func(p *Pipeline) {
		p.organizer = NewSpatialOrganizer(distance)
	}
}

// WithGeometryOptimizer installs the downstream geometry refinement hook.
func WithGeometryOptimizer(hook GeometryOptimizer) PipelineOption {
	return func(p *Pipeline) {
		p.optimizer = NewOptimizer(p.cfg.BatchSize, hook, p.logger)
	}
}

// WithStageRecorder installs a timing observer.
func WithStageRecorder(recorder StageRecorder) PipelineOption {
	return func(p *Pipeline) {
		p.recorder = recorder
	}
}

// NewPipeline constructs a pipeline for the given configuration.
func NewPipeline(cfg assembly.Config, logger *log.Logger, opts ...PipelineOption) *Pipeline {
	cfg = cfg.Normalize()
	if logger == nil {
		logger = log.Default()
	}
	p := &Pipeline{
		cfg:       cfg,
		builder:   NewElementBuilder(cfg, logger),
		organizer: NewSpatialOrganizer(DefaultClusterDistance),
		conflicts: NewConflictDetector(cfg.ConflictThreshold, logger),
		optimizer: NewOptimizer(cfg.BatchSize, nil, logger),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the full state machine over the input records. It always
// returns a well-formed result: a stage failure or panic yields a failed
// result carrying whatever collections were accumulated before the
// failure, with the error text in the warnings.
func (p *Pipeline) Run(ctx context.Context, records []*SymbolRecord) *assembly.Result {
	started := time.Now()
	state := &AssemblyContext{
		AssemblyID: fmt.Sprintf("bim_assembly_%d", started.Unix()),
		Metrics:    map[string]float64{},
	}
	p.logger.Printf("assembly_started: id=%s records=%d", state.AssemblyID, len(records))

	err := p.runStages(ctx, state, records)
	elapsed := time.Since(started).Seconds()
	state.Metrics["assembly_time"] = elapsed

	if err != nil {
		state.Warnings = append(state.Warnings, err.Error())
		p.logger.Printf("assembly_failed: id=%s error=%v duration_s=%.3f", state.AssemblyID, err, elapsed)
		if p.recorder != nil {
			p.recorder.ObserveRun(false, elapsed)
		}
		return p.resultFrom(state, false, elapsed)
	}

	p.logger.Printf("assembly_completed: id=%s elements=%d systems=%d spaces=%d relationships=%d conflicts=%d duration_s=%.3f",
		state.AssemblyID, len(state.Elements), len(state.Systems), len(state.Spaces),
		len(state.Relationships), len(state.Conflicts), elapsed)
	if p.recorder != nil {
		p.recorder.ObserveRun(true, elapsed)
	}
	return p.resultFrom(state, true, elapsed)
}

func (p *Pipeline) runStages(ctx context.Context, state *AssemblyContext, records []*SymbolRecord) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("assembly panicked: %v", r)
		}
	}()

	stages := []struct {
		name    Stage
		enabled bool
		run     func(context.Context, *AssemblyContext) error
	}{
		{StageGeometryExtraction, true, func(ctx context.Context, s *AssemblyContext) error {
			elements, err := p.builder.BuildAll(ctx, records)
			s.Elements = elements
			return err
		}},
		{StageElementClassification, true, func(_ context.Context, s *AssemblyContext) error {
			classifyElements(s.Elements)
			return nil
		}},
		{StageSpatialOrganization, true, func(_ context.Context, s *AssemblyContext) error {
			s.Spaces = p.organizer.Organize(s.Elements)
			return nil
		}},
		{StageSystemIntegration, true, func(_ context.Context, s *AssemblyContext) error {
			s.Systems = IntegrateSystems(s.Elements)
			return nil
		}},
		{StageRelationshipEstablish, true, func(_ context.Context, s *AssemblyContext) error {
			s.Relationships = BuildRelationships(s.Elements, s.Systems)
			return nil
		}},
		{StageConflictResolution, p.cfg.ConflictResolutionEnabled, func(_ context.Context, s *AssemblyContext) error {
			s.Conflicts = p.conflicts.Detect(s.Elements, s.Spaces, s.Systems)
			p.conflicts.Resolve(s.Conflicts, s.Elements)
			return nil
		}},
		{StageConsistencyValidation, true, func(_ context.Context, s *AssemblyContext) error {
			s.Validation = Validate(s.Elements, s.Systems, s.Spaces, s.Relationships)
			return nil
		}},
		{StagePerformanceOptimization, p.cfg.PerformanceOptimizationEnabled, func(_ context.Context, s *AssemblyContext) error {
			p.optimizer.Optimize(s.Elements, s.Systems, s.Spaces, s.Relationships, s.Metrics)
			return nil
		}},
	}

	for _, stage := range stages {
		if !stage.enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stage %s: %w", stage.name, err)
		}
		stageStart := time.Now()
		if err := stage.run(ctx, state); err != nil {
			return fmt.Errorf("stage %s: %w", stage.name, err)
		}
		stageSeconds := time.Since(stageStart).Seconds()
		if p.recorder != nil {
			p.recorder.ObserveStage(string(stage.name), stageSeconds)
		}
		p.logger.Printf("stage_completed: id=%s stage=%s duration_s=%.3f", state.AssemblyID, stage.name, stageSeconds)
	}
	return nil
}

// classifyElements assigns categories to freshly built elements. The
// category is the only element field written after construction outside
// of conflict resolution and optimization.
func classifyElements(elements []*assembly.Element) {
	for _, element := range elements {
		if element == nil {
			continue
		}
		element.Category = assembly.CategoryOf(element.Kind)
		if element.Properties == nil {
			element.Properties = map[string]any{}
		}
		element.Properties["category"] = string(element.Category)
	}
}

func (p *Pipeline) resultFrom(state *AssemblyContext, success bool, elapsed float64) *assembly.Result {
	return &assembly.Result{
		Success:            success,
		AssemblyID:         state.AssemblyID,
		Elements:           state.Elements,
		Systems:            state.Systems,
		Spaces:             state.Spaces,
		Relationships:      state.Relationships,
		Conflicts:          state.Conflicts,
		Validation:         state.Validation,
		PerformanceMetrics: state.Metrics,
		AssemblyTime:       elapsed,
		Warnings:           state.Warnings,
	}
}
