// Package routing implements a metadata-driven controller routing composer
// on top of go-chi/chi.
//
// Route handlers are declared as exported methods on plain structs
// ("controllers"). A process-wide metadata registry associates a mount path
// and a middleware chain with each controller type, and a route binding
// (HTTP verb, path, optional auth-required flag) with each handler method.
// Registrations are made with explicit calls — typically from the controller
// package's init function — via [MountPath], [Use], [UseOn], and the verb
// builders [Get], [Post], [Put], [Delete], and [Patch].
//
// [Compose] walks each controller's full method set (promoted methods from
// embedded base controllers included), wraps every bound handler so its
// return value or failure is normalized into exactly one HTTP response,
// and mounts the resulting sub-routers onto one top-level router.
// [Initialize] additionally binds the listening socket and starts serving.
package routing
