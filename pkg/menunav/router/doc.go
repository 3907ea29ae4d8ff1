// Package router owns the active screen of a frame-stepped application and
// the bounded history used for back navigation.
//
// Screens are a closed set of typed constants. Each screen registers
// lifecycle hooks; the Controller runs them when a transition is applied.
// Transitions are never applied at the point they are requested: a request
// only records the target, and ApplyPendingTransition, called once at the
// start of every frame, tears down the old screen and builds the new one.
// This keeps Current stable for the rest of a frame.
//
// # Basic Usage
//
//	c := router.NewController(router.ScreenMainMenu)
//
//	c.Register(router.ScreenMainMenu, router.Hooks{
//	    OnEnter: func(from router.Screen) { handles = ui.Spawn(router.ScreenMainMenu) },
//	    OnExit:  func(to router.Screen) { ui.Despawn(handles) },
//	})
//	c.Register(router.ScreenInGame, router.Hooks{
//	    OnUpdate: movePlayer,
//	})
//
//	for running {
//	    c.ApplyPendingTransition()
//	    c.Update()
//	    // input handling may call c.RequestTransition or c.RequestBack
//	}
//
// # History
//
// Every applied transition, back transitions included, pushes the screen
// being left onto a History of fixed capacity (DefaultHistoryCapacity). When
// full, the oldest entry is discarded. RequestBack pops the most recent entry
// and queues it; repeated RequestBack calls before the next apply pop only
// once. A request for the active screen is applied like any other: its exit
// hooks run, then its enter hooks. Entering the gameplay screen clears the
// history so that pausing restarts back navigation from gameplay.
//
// An empty history is reported as ErrEmptyHistory together with the caller's
// fallback screen, which is then queued.
package router
