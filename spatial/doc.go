// Package spatial provides Interactable, a stateful interaction component
// tracking hover and selection per pointer, in the style of spatial-UI
// toolkits where several interactors (hands, rays, mice) may select the same
// object at once.
//
// Importing the package registers the "spatial.Interactable" capability, so a
// tactile.PressFeedback on the same node binds to it automatically:
//
//	import _ "github.com/phanxgames/tactile/spatial"
package spatial
