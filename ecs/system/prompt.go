package system

import (
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
)

// setPrompt writes the interactive prompt text. Worlds without a prompt
// entity are left alone.
func setPrompt(w *ecs.World, text string) {
	ecs.ForEach2(w, component.InteractivePromptComponent.Kind(), component.UITextComponent.Kind(), func(_ ecs.Entity, _ *component.InteractivePrompt, t *component.UIText) {
		t.Value = text
	})
}

func logLine(w *ecs.World, text string) {
	ecs.Emit(w, ecs.LogMessage{Text: text})
}

// frameInput returns the sampled input of this frame.
func frameInput(w *ecs.World) (*component.Input, bool) {
	e, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.InputComponent.Kind())
}
