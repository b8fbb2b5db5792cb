package system

import (
	"strings"

	"github.com/milk9111/dungeon/common"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// GameLogSystem appends LogMessage events to the on-screen log, applies
// scroll input and redraws the visible window into the log's UIText.
type GameLogSystem struct{}

func NewGameLogSystem() *GameLogSystem {
	return &GameLogSystem{}
}

func (s *GameLogSystem) Update(w *ecs.World) {
	messages := ecs.Events[ecs.LogMessage](w)
	scroll := 0
	if in, ok := frameInput(w); ok {
		scroll = in.LogScroll
	}

	ecs.ForEach(w, component.GameLogComponent.Kind(), func(e ecs.Entity, log *component.GameLog) {
		for _, msg := range messages {
			appendLine(log, msg.Text)
		}
		if scroll != 0 {
			ScrollLog(log, scroll)
		}
		if !log.Dirty {
			return
		}
		log.Dirty = false
		if text, ok := ecs.Get(w, e, component.UITextComponent.Kind()); ok {
			text.Value = strings.Join(VisibleLines(log), "\n")
		}
	})
}

func maxScroll(log *component.GameLog) int {
	return max(0, len(log.Lines)-max(1, log.Visible))
}

// appendLine adds a line and keeps the view pinned to the newest line when
// it was already showing it.
func appendLine(log *component.GameLog, line string) {
	atBottom := log.Scroll >= maxScroll(log)
	log.Lines = append(log.Lines, line)
	if log.Capacity > 0 && len(log.Lines) > log.Capacity {
		dropped := len(log.Lines) - log.Capacity
		log.Lines = append(log.Lines[:0], log.Lines[dropped:]...)
		log.Scroll -= dropped
	}
	if atBottom {
		log.Scroll = maxScroll(log)
	}
	log.Scroll = common.Clamp(log.Scroll, 0, maxScroll(log))
	log.Dirty = true
}

// ScrollLog moves the view by delta lines, clamped to the history.
func ScrollLog(log *component.GameLog, delta int) {
	next := common.Clamp(log.Scroll+delta, 0, maxScroll(log))
	if next != log.Scroll {
		log.Scroll = next
		log.Dirty = true
	}
}

// VisibleLines returns the lines currently in view, oldest first.
func VisibleLines(log *component.GameLog) []string {
	if len(log.Lines) == 0 {
		return nil
	}
	start := common.Clamp(log.Scroll, 0, maxScroll(log))
	end := min(len(log.Lines), start+max(1, log.Visible))
	return log.Lines[start:end]
}
