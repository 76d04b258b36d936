package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ChicagoDave/nestcde/pkg/cde"
	"github.com/ChicagoDave/nestcde/pkg/config"
	"github.com/ChicagoDave/nestcde/pkg/geo"
	"github.com/ChicagoDave/nestcde/pkg/hazard"
	"github.com/ChicagoDave/nestcde/pkg/instance"
)

// hazardKeyView is the JSON-friendly rendering of a hazard.HazardKey.
type hazardKeyView struct {
	Index      uint32 `json:"index"`
	Generation uint32 `json:"generation"`
}

func viewKey(k hazard.HazardKey) hazardKeyView {
	return hazardKeyView{Index: k.Index, Generation: k.Generation}
}

// loadEngine loads an instance file and registers its container,
// returning the engine and the parsed instance for item lookup.
func loadEngine(instancePath string) (*cde.Engine, instance.Instance, error) {
	inst, err := instance.Load(instancePath)
	if err != nil {
		return nil, instance.Instance{}, fmt.Errorf("loading instance: %w", err)
	}
	eng := cde.New(inst.Container.Bounds(), config.Default())
	if _, _, _, err := instance.RegisterContainer(eng, inst.Container); err != nil {
		return nil, instance.Instance{}, fmt.Errorf("registering container: %w", err)
	}
	return eng, inst, nil
}

func findItem(inst instance.Instance, id string) (instance.ItemSpec, error) {
	for _, it := range inst.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return instance.ItemSpec{}, fmt.Errorf("no item with id %q in instance catalog", id)
}

func runInspect(instancePath, itemID string, dx, dy, theta float64, mode string) error {
	eng, inst, err := loadEngine(instancePath)
	if err != nil {
		return err
	}
	item, err := findItem(inst, itemID)
	if err != nil {
		return err
	}

	shape := item.Shape()
	sur := eng.BuildSurrogate(shape)
	pl := geo.Placement{DX: dx, DY: dy, Theta: theta}

	var output map[string]any
	switch mode {
	case "collect":
		keys := eng.CollectItem(shape, sur, pl, nil)
		views := make([]hazardKeyView, len(keys))
		for i, k := range keys {
			views[i] = viewKey(k)
		}
		output = map[string]any{
			"mode":      "collect",
			"collides":  len(keys) > 0,
			"hazards":   views,
			"placement": pl,
		}
	default:
		collided, first := eng.DetectItem(shape, sur, pl, nil)
		result := map[string]any{
			"mode":      "detect",
			"collides":  collided,
			"placement": pl,
		}
		if collided {
			result["first_hazard"] = viewKey(first)
		}
		output = result
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func runBench(instancePath, itemID string, n int) error {
	eng, inst, err := loadEngine(instancePath)
	if err != nil {
		return err
	}
	item, err := findItem(inst, itemID)
	if err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("bench count must be positive, got %d", n)
	}

	shape := item.Shape()
	sur := eng.BuildSurrogate(shape)
	bounds := inst.Container.Bounds()

	start := time.Now()
	collisions := 0
	for i := 0; i < n; i++ {
		pl := gridPlacement(bounds, i, n)
		collided, _ := eng.DetectItem(shape, sur, pl, nil)
		if collided {
			collisions++
		}
	}
	elapsed := time.Since(start)

	output := map[string]any{
		"queries":      n,
		"collisions":   collisions,
		"total":        elapsed.String(),
		"per_query_ns": elapsed.Nanoseconds() / int64(n),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// gridPlacement deterministically spreads n trial placements across
// bounds, so repeated bench runs are directly comparable.
func gridPlacement(bounds geo.Rect, i, n int) geo.Placement {
	cols := 1
	for cols*cols < n {
		cols++
	}
	row := i / cols
	col := i % cols
	stepX := bounds.Width() / float64(cols)
	stepY := bounds.Height() / float64(cols)
	return geo.Placement{
		DX: bounds.MinX + stepX*(float64(col)+0.5),
		DY: bounds.MinY + stepY*(float64(row)+0.5),
	}
}
