// Package surface defines where animators and pagination write to, and
// provides Grid, an in-memory 54-slot surface with a caption.
package surface

import (
	"github.com/ivlev/gridmenu/internal/visual"
)

// Animator is a running animation owned by a surface.
type Animator interface {
	// Identifier returns the caller-supplied tag, possibly empty.
	Identifier() string
	// Stop cancels the animation. It must be safe to call more than once.
	Stop()
}

// Surface receives visual mutations and tracks the animators writing to it.
type Surface interface {
	WriteSlot(index int, s visual.Stack)
	WriteCaption(text string)
	Caption() string
	RegisterAnimator(a Animator)
	DeregisterAnimator(a Animator)
}
