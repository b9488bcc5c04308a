// Package router holds the route table and the gate that decides which
// screen is actually shown.
//
// ResolveRoute is the gate: a pure function of the requested route and the
// active session. It performs at most one redirect, and home and login
// never redirect, so resolution always terminates. Router wraps it with the
// active-page state and the render callbacks registered per route.
package router
