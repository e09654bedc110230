// Package preview renders generated levels for inspection.
//
// ASCII prints one block per Y layer, rows along Z and columns along X:
//
//	.  None      #  Room      +  Corridor      =  Stairs
//	S  spawn entry           E  exit entry
//
// RenderPNG draws the same layers side by side with fogleman/gg and overlays
// the selected edges as lines between vertex projections. Neither function
// modifies the level.
package preview
