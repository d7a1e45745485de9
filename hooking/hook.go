// Package hooking lets observers watch changes made to a roster without the
// roster knowing who they are.
package hooking

// HookPos names a place where hooks fire, such as "a student was added".
type HookPos struct {
	Name string
}

// HookCtx carries what a hook needs to know about a single change.
type HookCtx struct {
	// Domain is the object that invoked the hook.
	Domain Hookable

	// Pos is where in Domain the hook fired.
	Pos *HookPos

	// Item is the record the change applies to.
	Item interface{}

	// Detail is position specific, for example the list position of Item.
	Detail interface{}
}

// Hookable is implemented by anything that accepts hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)

	// NumHooks returns the number of hooks registered.
	NumHooks() int

	// Hooks returns all the hooks registered.
	Hooks() []Hook
}

// Hook is invoked by a Hookable each time it changes.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase implements Hookable. Embed it and call InvokeHook.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// Hooks returns all the hooks registered.
func (h *HookableBase) Hooks() []Hook {
	return h.hookList
}

// AcceptHook registers a hook. Registering the same hook twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	for _, registered := range h.hookList {
		if registered == hook {
			panic("duplicated hook")
		}
	}

	h.hookList = append(h.hookList, hook)
}

// InvokeHook calls every registered hook in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}
