// Package log provides the logging surface used across the engine and
// its collaborator packages: a small printf-style Logger interface, a
// stdlib-backed default, a silent no-op implementation, and an adapter
// for kataras/golog when leveled colored output is wanted.
//
// Components log through the package-level default so applications can
// redirect everything with a single SetDefaultLogger call.
package log
