package animation

// EntranceSpec defines the callbacks fired as the hero banner reveals.
type EntranceSpec struct {
	// OnMainContent runs once the logo animation has finished.
	OnMainContent func()
	// OnArm runs after the typing delay and opens the typewriter gate.
	OnArm func()
}

// BlinkSpec toggles the typing cursor.
type BlinkSpec struct {
	OnToggle func(visible bool)
}
