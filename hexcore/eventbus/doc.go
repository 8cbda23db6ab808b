// Package eventbus provides an in-process event dispatcher with concurrent
// fan-out and isolated failure handling.
//
// Events are routed by a string identifier. Events that implement Named
// supply it explicitly; other values fall back to their type name, and
// values with no usable name collide on the shared "unknown" channel.
//
// Publish invokes every registered handler concurrently and joins before
// returning. A handler that fails or panics never affects its siblings and
// never fails the publish call: failures are aggregated into a typed
// DispatchReport surfaced through the structured logger and an optional
// failure observer.
package eventbus
