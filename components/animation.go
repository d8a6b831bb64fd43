package components

import "log"

// SetAction switches the body to the named animation, restarting it. An
// unknown key logs a warning and keeps the current animation.
func (b *BodyData) SetAction(action string) {
	if b.Action == action && b.Anim != nil {
		return
	}
	def, ok := b.Anims[action]
	if !ok {
		log.Printf("Warning: missing animation %q for %s", action, b.Kind)
		return
	}
	b.Action = action
	b.Anim = def.New()
}
