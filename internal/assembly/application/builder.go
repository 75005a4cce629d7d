package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	assembly "arx-bim/internal/assembly/domain"
)

// ElementBuilder turns raw symbol records into typed elements. A record
// that cannot be built is logged and skipped; it never aborts the batch.
type ElementBuilder struct {
	cfg    assembly.Config
	logger *log.Logger
}

// NewElementBuilder constructs a builder. A nil logger falls back to the
// process default.
func NewElementBuilder(cfg assembly.Config, logger *log.Logger) *ElementBuilder {
	if logger == nil {
		logger = log.Default()
	}
	return &ElementBuilder{cfg: cfg.Normalize(), logger: logger}
}

// Build converts one record into an element. The returned element is nil
// only when the record itself is nil or carries an empty type and no
// recognizable content.
func (b *ElementBuilder) Build(record *SymbolRecord, position int) (*assembly.Element, error) {
	if record == nil {
		return nil, assembly.ErrNilRecord
	}

	kind := ClassifyKind(record.SymbolMetadata, record.Type)

	id := record.ID
	if id == "" {
		id = fmt.Sprintf("element_%d", position)
	}
	name := record.Name
	if name == "" {
		name = fmt.Sprintf("%s_%d", record.Type, position)
	}

	properties := ConvertProperties(record.Properties)
	if properties == nil {
		properties = map[string]any{}
	}

	element := &assembly.Element{
		ID:             id,
		Name:           name,
		Kind:           kind,
		Geometry:       buildGeometry(record.Geometry),
		Properties:     properties,
		SymbolMetadata: record.SymbolMetadata,
		Tags:           record.Tags,
		Status:         record.Status,
	}
	return element, nil
}

// buildGeometry converts a raw geometry block into a typed geometry.
// Unsupported geometry types yield nil, not an error: the element is still
// built, it just takes no part in spatial operations.
func buildGeometry(raw *RecordGeometry) *assembly.Geometry {
	if raw == nil {
		return nil
	}

	geom := &assembly.Geometry{
		Centroid:   append([]float64(nil), raw.Centroid...),
		Properties: raw.Properties,
	}
	if len(raw.BoundingBox) >= 4 {
		geom.BoundingBox = &assembly.BoundingBox{
			MinX: raw.BoundingBox[0], MinY: raw.BoundingBox[1],
			MaxX: raw.BoundingBox[2], MaxY: raw.BoundingBox[3],
		}
	}

	switch strings.ToLower(raw.Type) {
	case "point":
		geom.Kind = assembly.GeometryPoint
		pts, ok := asPointList(raw.Coordinates)
		if !ok {
			// Some producers emit the point as a flat pair.
			if pt, flat := asPoint(raw.Coordinates); flat {
				pts, ok = [][]float64{pt}, true
			}
		}
		if ok {
			geom.Coordinates = pts
			if len(geom.Centroid) < 2 && len(pts) > 0 {
				geom.Centroid = append([]float64(nil), pts[0]...)
			}
		}
	case "linestring":
		geom.Kind = assembly.GeometryLineString
		if pts, ok := asPointList(raw.Coordinates); ok {
			geom.Coordinates = pts
		}
	case "polygon":
		geom.Kind = assembly.GeometryPolygon
		if rings, ok := asRingList(raw.Coordinates); ok {
			geom.Rings = rings
		} else if pts, ok := asPointList(raw.Coordinates); ok {
			// Some producers emit a single un-nested ring.
			geom.Rings = [][][]float64{pts}
		}
	default:
		return nil
	}
	return geom
}

// BuildAll converts every record. Records exceeding the batch size are
// fanned out over a bounded worker pool when parallel processing is on;
// otherwise they are built strictly in input order. Parallel output order
// follows task completion, not input order.
func (b *ElementBuilder) BuildAll(ctx context.Context, records []*SymbolRecord) ([]*assembly.Element, error) {
	if len(records) > b.cfg.BatchSize && b.cfg.ParallelProcessing {
		return b.buildParallel(ctx, records)
	}
	return b.buildSequential(ctx, records)
}

func (b *ElementBuilder) buildSequential(ctx context.Context, records []*SymbolRecord) ([]*assembly.Element, error) {
	elements := make([]*assembly.Element, 0, len(records))
	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return elements, err
		}
		element, err := b.Build(record, i)
		if err != nil {
			b.logger.Printf("element_build_skipped: position=%d error=%v", i, err)
			continue
		}
		elements = append(elements, element)
	}
	return elements, nil
}

type buildTask struct {
	record   *SymbolRecord
	position int
}

func (b *ElementBuilder) buildParallel(ctx context.Context, records []*SymbolRecord) ([]*assembly.Element, error) {
	workers := b.cfg.MaxWorkers
	tasks := make(chan buildTask)
	results := make(chan *assembly.Element)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for task := range tasks {
				element, err := b.Build(task.record, task.position)
				if err != nil {
					b.logger.Printf("element_build_skipped: position=%d error=%v", task.position, err)
					continue
				}
				select {
				case results <- element:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		// Submit in batch-sized chunks so a cancelled run stops between
		// chunks instead of draining the whole input.
		for start := 0; start < len(records); start += b.cfg.BatchSize {
			end := start + b.cfg.BatchSize
			if end > len(records) {
				end = len(records)
			}
			for i := start; i < end; i++ {
				select {
				case tasks <- buildTask{record: records[i], position: i}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	elements := make([]*assembly.Element, 0, len(records))
	for element := range results {
		elements = append(elements, element)
	}
	return elements, ctx.Err()
}
