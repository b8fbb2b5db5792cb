package component

// Interactor marks the entity whose collider probes for nearby objects.
type Interactor struct{}

var InteractorComponent = NewComponent[Interactor]()

// Interactable is present while an entity overlaps at least one interactor.
type Interactable struct{}

var InteractableComponent = NewComponent[Interactable]()

// InteractivePrompt marks the UI text that shows the current interaction.
type InteractivePrompt struct{}

var InteractivePromptComponent = NewComponent[InteractivePrompt]()

// Interaction is implemented by components that react to the interact input.
type Interaction interface {
	Interact()
}
