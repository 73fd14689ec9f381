// Command pressdemo shows press feedback on buttons driven by each input
// backend, with pose presets that can be saved, loaded and hot-reloaded.
//
//	S save preset    L load (animated)    R reset
//	C copy preset JSON to the clipboard
//	arrows move the last clicked button, Q/E rotate it
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"golang.design/x/clipboard"

	"github.com/phanxgames/tactile"
	"github.com/phanxgames/tactile/ecs"
	"github.com/phanxgames/tactile/preset"
	"github.com/phanxgames/tactile/spatial"
	"github.com/phanxgames/tactile/uibutton"
)

const presetName = "demo"

var (
	presetsDir = flag.String("presets", "presets", "directory for preset files")
	gdataApp   = flag.String("gdata", "", "store presets in app data under this name instead of -presets")
	configPath = flag.String("config", "", "press feedback YAML config")
	scriptPath = flag.String("script", "", "JSON test script to replay")
)

func main() {
	flag.Parse()

	cfg := tactile.PressConfig{Ease: ease.OutQuad}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		if cfg, err = tactile.LoadPressConfig(data); err != nil {
			log.Fatal(err)
		}
	}

	face, err := loadFace(18)
	if err != nil {
		log.Fatal(err)
	}

	scene := tactile.NewScene()
	scene.ClearColor = tactile.Color{R: 0.12, G: 0.12, B: 0.14, A: 1}

	plain := newButtonNode("plain", "Button", face, 60, 80, tactile.Color{R: 0.95, G: 0.75, B: 0.3, A: 1})
	tactile.NewButton(plain)

	selectable := newButtonNode("selectable", "Interactable", face, 60, 160, tactile.Color{R: 0.4, G: 0.8, B: 0.95, A: 1})
	spatial.Attach(selectable)

	both := newButtonNode("both", "Both", face, 60, 240, tactile.Color{R: 0.6, G: 0.9, B: 0.5, A: 1})
	tactile.NewButton(both)
	spatial.Attach(both)

	ui, widgetBtn := buildUI(face)
	mirror := newButtonNode("mirror", "mirror", face, 260, 240, tactile.Color{R: 0.8, G: 0.8, B: 0.8, A: 1})
	uibutton.Attach(mirror, widgetBtn)

	buttons := []*tactile.Node{plain, selectable, both, mirror}
	selected := plain
	for i, n := range buttons {
		n.EntityID = uint32(i + 1)
		scene.Root().AddChild(n)
		pf := tactile.NewPressFeedback(n, cfg)
		pf.Enable()
		scene.AddBehavior(pf)
		n.AddClickListener(func(tactile.ClickContext) { selected = n })
	}

	world := donburi.NewWorld()
	scene.SetEntityStore(ecs.NewDonburiStore(world, tactile.EventClick))
	ecs.InteractionEventType.Subscribe(world, func(_ donburi.World, e tactile.InteractionEvent) {
		log.Printf("[pressdemo] click entity %d at (%.0f, %.0f)", e.EntityID, e.GlobalX, e.GlobalY)
	})

	store, watcher := openStore()
	if watcher != nil {
		defer watcher.Close()
	}
	presets := preset.NewManager(store, buttons...)

	clipboardOK := clipboard.Init() == nil
	if !clipboardOK {
		log.Printf("[pressdemo] clipboard unavailable")
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := tactile.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		scene.SetTestRunner(runner)
	}

	scene.SetUpdateFunc(func() error {
		ui.Update()
		ecs.InteractionEventType.ProcessEvents(world)
		nudge(selected)

		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			if err := presets.Save(presetName); err != nil {
				log.Printf("[pressdemo] save: %v", err)
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyL):
			groups, err := presets.LoadAnimated(presetName, 0.3, ease.OutCubic)
			if err != nil {
				log.Printf("[pressdemo] load: %v", err)
			}
			for _, g := range groups {
				scene.AddTween(g)
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			presets.Reset()
		case inpututil.IsKeyJustPressed(ebiten.KeyC) && clipboardOK:
			data, err := presets.Encoded(presetName)
			if err != nil {
				log.Printf("[pressdemo] copy: %v", err)
				break
			}
			clipboard.Write(clipboard.FmtText, data)
		}

		if watcher != nil {
			select {
			case name := <-watcher.Events:
				if name == presetName {
					_ = presets.Load(name)
				}
			case err := <-watcher.Errors:
				log.Printf("[pressdemo] watch: %v", err)
			default:
			}
		}
		return nil
	})
	scene.SetDrawFunc(ui.Draw)

	if err := tactile.Run(scene, tactile.RunConfig{Title: "pressdemo", Width: 640, Height: 400, ShowFPS: true}); err != nil {
		log.Fatal(err)
	}
}

// openStore picks the preset backend from the flags. Only file presets are
// watched.
func openStore() (preset.Store, *preset.Watcher) {
	if *gdataApp != "" {
		s, err := preset.OpenGdataStore(*gdataApp)
		if err != nil {
			log.Printf("[pressdemo] app data unavailable, presets kept in memory: %v", err)
			return preset.NewGdataStore(nil), nil
		}
		return s, nil
	}
	if err := os.MkdirAll(*presetsDir, 0o755); err != nil {
		log.Fatal(err)
	}
	w, err := preset.NewWatcher(*presetsDir)
	if err != nil {
		log.Printf("[pressdemo] hot reload off: %v", err)
	}
	return preset.NewFileStore(*presetsDir), w
}

func nudge(n *tactile.Node) {
	const step = 2
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		n.SetPosition(n.X-step, n.Y)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		n.SetPosition(n.X+step, n.Y)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		n.SetPosition(n.X, n.Y-step)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		n.SetPosition(n.X, n.Y+step)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyQ):
		n.SetRotation(n.Rotation - 0.02)
	case ebiten.IsKeyPressed(ebiten.KeyE):
		n.SetRotation(n.Rotation + 0.02)
	}
}
