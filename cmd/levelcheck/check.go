package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/dungeon/levels"
)

type severity int

const (
	severityInfo severity = iota
	severityWarn
	severityError
)

type finding struct {
	severity severity
	message  string
}

type doorReport struct {
	x, y int
	open bool
	// source is "prop" when is_open was a bool, "default" when absent and
	// "invalid" when it held another type.
	source string
}

type report struct {
	level    string
	width    int
	height   int
	doors    []doorReport
	findings []finding
}

func (r report) worst() severity {
	worst := severityInfo
	for _, f := range r.findings {
		worst = max(worst, f.severity)
	}
	return worst
}

// checkLevel inspects a parsed level the same way the game reads it.
func checkLevel(name string, lvl *levels.Level) report {
	r := report{level: name, width: lvl.Width, height: lvl.Height}

	players := 0
	for i, ent := range lvl.Entities {
		switch strings.ToLower(ent.Type) {
		case "player":
			players++
		case "camera":
		case "door":
			d := doorReport{x: ent.X, y: ent.Y, source: "default"}
			value, present, ok := ent.BoolProp("is_open")
			switch {
			case present && ok:
				d.open = value
				d.source = "prop"
			case present:
				d.source = "invalid"
				r.findings = append(r.findings, finding{severityWarn, fmt.Sprintf("door %d at (%d,%d): is_open is %T, the game treats it as closed", i, ent.X, ent.Y, ent.Props["is_open"])})
			}
			r.doors = append(r.doors, d)
		default:
			r.findings = append(r.findings, finding{severityWarn, fmt.Sprintf("entity %d: unknown type %q is skipped", i, ent.Type)})
		}

		if ent.X < 0 || ent.Y < 0 || ent.X >= lvl.Width*32 || ent.Y >= lvl.Height*32 {
			r.findings = append(r.findings, finding{severityWarn, fmt.Sprintf("entity %d (%s) at (%d,%d) is outside the level", i, ent.Type, ent.X, ent.Y)})
		}
	}

	switch players {
	case 0:
		r.findings = append(r.findings, finding{severityError, "no Player entity"})
	case 1:
	default:
		r.findings = append(r.findings, finding{severityWarn, fmt.Sprintf("%d Player entities, only the last one is controlled", players)})
	}

	physics := false
	for _, m := range lvl.LayerMeta {
		physics = physics || m.Physics
	}
	if !physics {
		r.findings = append(r.findings, finding{severityInfo, "no physics layer, walls will not block"})
	}
	return r
}
