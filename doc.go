// Package sway is an animation and transition engine for a retained-mode 2D
// view tree on [Ebitengine].
//
// Sway turns declarative state changes ("this layer should now be at this
// frame, with this opacity") into smooth, interruptible, time-based
// animations, plus an inertial scroll animator with exponential decay.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := sway.NewScene()
//	card := sway.NewLayer("card", sway.LayerStandard, sway.Rect{X: 40, Y: 40, Width: 120, Height: 80})
//	scene.Root().AddChild(card)
//	sway.UpdateFrame(sway.Animated(0.4, sway.Spring), card, sway.Rect{X: 200, Y: 40, Width: 160, Height: 80}, nil)
//	sway.Run(scene, sway.RunConfig{
//		Title: "Sway", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly:
//
//	type Game struct{ scene *sway.Scene }
//
//	func (g *Game) Update() error         { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Transitions
//
// A [Transition] is either [Immediate] or [Animated] with a duration and a
// [Curve]. The Update functions ([UpdateFrame], [UpdateAlpha], [UpdateScale],
// [UpdateStrokeEnd], [AnimatePositionKeyframes], ...) apply one to a [Layer]
// and return a [Token]. Every request reports exactly once through its
// [Completion]: true when it ran to the end, false when a newer request for
// the same property replaced it or the token was cancelled.
//
// Each layer keeps a logical value (the target) and a presentation value (what
// is on screen) per channel. Retargeting mid-flight starts from the
// presentation value, so there is no visual discontinuity.
//
// # Curves
//
// Named curves are [Linear], [EaseInOut], [EaseOut], [Legacy], [Spring] (a
// 17-sample table) and [SystemCurve]. [Bezier] builds a custom cubic Bezier,
// [SpringCurve] tabulates a damped spring (via [harmonica]) and [FromEase]
// wraps any [gween] easing function.
//
// # Scheduling
//
// Everything runs on one thread. A [Scene] owns a [DisplayLink]; animating
// layers, [PeriodicClock]s and [ScrollView]s subscribe to it and are stepped
// once per Scene.Update. Tests use [NewSceneWithTime] with a [ManualTime].
//
// # Presets and ECS
//
// Named transitions can be loaded from TOML, YAML or JSON with [LoadPresets].
// Transition results can be forwarded to a [Donburi] world through the
// adapter in sway/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
// [Donburi]: https://github.com/yohamta/donburi
package sway
