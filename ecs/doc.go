// Package ecs provides ECS adapters for novel's scene callbacks.
//
// The primary adapter is [NewDonburiHooks], which bridges controller
// callbacks (navigate, submit, reroll, wrap-up, close) into a [Donburi] world
// as typed events. Subscribe to [SceneEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	hooks := ecs.NewDonburiHooks(world)
//	hooks.Wire(&opts)
//	ctrl, err := novel.NewController(script, opts)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
