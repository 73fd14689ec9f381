// Package tactile is a small retained-mode 2D scene toolkit for [Ebitengine]
// built around tactile press feedback: a pressable node's visible face scales
// down while held and springs back on release, whichever input backend
// drives it.
//
// # Quick start
//
// [Run] creates a window and game loop for you:
//
//	scene := tactile.NewScene()
//
//	btn := tactile.NewSprite("button", 160, 48)
//	face := tactile.NewSprite("Frontplate", 160, 48)
//	face.SetPivot(80, 24)
//	face.SetPosition(80, 24)
//	btn.AddChild(face)
//	scene.Root().AddChild(btn)
//
//	tactile.NewButton(btn)
//	pf := tactile.NewPressFeedback(btn, tactile.PressConfig{})
//	pf.Enable()
//	scene.AddBehavior(pf)
//
//	tactile.Run(scene, tactile.RunConfig{Title: "Press me", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Scene.Root] and
// inherit their parent's transform. Nodes carry components: any value added
// with [Node.AddComponent] and queried with [ComponentOf].
//
// # Press feedback
//
// [PressFeedback] resolves which node to scale ([ResolveTarget]), binds to
// every interaction source on its node, and runs one scale ease at a time.
// Sources are the built-in [Button] plus any capability registered with
// [RegisterCapability]. Backends register themselves from init, so linking
// one in is a blank import:
//
//	import _ "github.com/phanxgames/tactile/spatial"  // hover/select interactables
//	import _ "github.com/phanxgames/tactile/uibutton" // ebitenui buttons
//
// Press feedback runs on unscaled frame time: [Scene.TimeScale] slows scene
// tweens but never the controller.
//
// # Testing
//
// [Scene.InjectPress], [Scene.InjectRelease] and [Scene.InjectClick] queue
// synthetic pointer events, and [LoadTestScript] replays JSON scripts of
// them. Set [Scene.LiveInput] to false to ignore the real mouse.
//
// [Ebitengine]: https://ebitengine.org
package tactile
