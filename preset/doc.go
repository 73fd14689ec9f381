// Package preset saves, loads and resets the world-space pose of a fixed set
// of named scene nodes.
//
// A preset is a JSON document listing, per node name, the node's world
// position, world rotation and local scale. Presets live in a Store: a
// directory of <name>.json files (FileStore) or the platform's application
// data area (GdataStore). A Watcher reports presets edited on disk so they
// can be reloaded while the game runs.
//
//	m := preset.NewManager(preset.NewFileStore("presets"), card, lamp)
//	_ = m.SaveDefault()
//	...
//	_ = m.LoadDefault()
package preset
