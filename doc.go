// Package alder is a sprite simulation and collision layer for [Ebitengine].
//
// Alder owns entity state (position, costumes, motion), per-frame collision
// detection (bounding-box and convex-polygon SAT), pixel-derived hitbox
// extraction, touch enter/continue/exit events, draw-order management, and a
// clone/delete lifecycle. It is the simulation core for stage-style games:
// sprites with costumes, pens, control schemes, and per-pair touch callbacks.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage := alder.NewStage(960, 720)
//	player := stage.NewSprite("player")
//	player.SetPosition(480, 360)
//	player.SetSpeed(4)
//	player.SetControlScheme(alder.ArrowKeys)
//	alder.Run(stage, alder.RunConfig{Title: "My Game"})
//
// For full control, implement [ebiten.Game] yourself and call [Stage.Update]
// and [Stage.Draw] directly.
//
// # Simulation model
//
// Every element is an [Entity] with a kind tag (sprite, text, or overlay
// widget); the stage keeps one ordered draw list, index 0 back-most. One
// [Stage.Update] is one tick: click dispatch, movement with per-axis snap
// resolution against hitbox-enabled obstacles, touch diffing, update
// overrides, glides. All mutation happens synchronously inside the tick;
// passes snapshot the entity list first, so callbacks may freely clone,
// delete, or relayer entities.
//
// Collision uses center-based bounding boxes by default and upgrades to
// exact convex-polygon tests when both sprites carry a hitbox, either set by
// hand ([Entity.SetHitbox]) or traced from a costume's alpha channel
// ([Entity.TraceCostumeHitbox]).
//
// There is no rigid-body physics: gravity is a constant per-tick bias and
// collision resolution is a positional snap. Fast sprites can tunnel through
// thin obstacles.
//
// [Ebitengine]: https://ebitengine.org
package alder
